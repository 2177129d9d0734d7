package blog_service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"pet-blog-api/model/blog_model"
	"pet-blog-api/pkg/apperr"
	"pet-blog-api/pkg/config"

	"golang.org/x/net/html"
)

// urlPattern 仅接受 http/https 链接
var urlPattern = regexp.MustCompile(`^https?://`)

// PreviewService 链接预览抓取服务
type PreviewService struct {
	client      *http.Client
	maxBodySize int64
}

// NewPreviewService 按配置创建预览服务，超时由 http.Client 统一约束
func NewPreviewService(cfg config.PreviewConfig) *PreviewService {
	return &PreviewService{
		client:      &http.Client{Timeout: cfg.Timeout},
		maxBodySize: cfg.MaxBodySize,
	}
}

// Fetch 抓取目标页面并提取预览信息。
// URL 不合法时返回校验错误且不发起网络请求；网络或解析失败统一归为抓取失败，不重试。
func (s *PreviewService) Fetch(ctx context.Context, rawURL string) (*blog_model.SharedLink, error) {
	if !urlPattern.MatchString(rawURL) {
		return nil, apperr.Invalid("url", "Invalid URL format")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, apperr.Invalid("url", "Invalid URL format")
	}
	domain := parsed.Hostname()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperr.Invalid("url", "Invalid URL format")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", apperr.ErrFetchFailed, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if !strings.Contains(ct, "html") && !strings.HasPrefix(ct, "text/") {
			return nil, fmt.Errorf("%w: unsupported content type %s", apperr.ErrFetchFailed, ct)
		}
	}

	// 限制读取体积，避免被超大页面拖垮
	meta, err := extractPageMeta(io.LimitReader(resp.Body, s.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrFetchFailed, err)
	}

	return buildPreview(rawURL, domain, meta), nil
}

// pageMeta 从页面标记中收集到的原始元信息
type pageMeta struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	OGImage       string
}

// extractPageMeta 解析 HTML 并收集 <title> 与 description/og:* meta 标签
func extractPageMeta(r io.Reader) (pageMeta, error) {
	var meta pageMeta

	doc, err := html.Parse(r)
	if err != nil {
		return meta, err
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if meta.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					meta.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var name, property, content string
				for _, attr := range n.Attr {
					switch strings.ToLower(attr.Key) {
					case "name":
						name = strings.ToLower(attr.Val)
					case "property":
						property = strings.ToLower(attr.Val)
					case "content":
						content = attr.Val
					}
				}
				if content == "" {
					break
				}
				switch {
				case name == "description" && meta.Description == "":
					meta.Description = content
				case property == "og:title" && meta.OGTitle == "":
					meta.OGTitle = content
				case property == "og:description" && meta.OGDescription == "":
					meta.OGDescription = content
				case property == "og:image" && meta.OGImage == "":
					meta.OGImage = content
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return meta, nil
}

// buildPreview 按优先级组装预览：og:title > <title> > 域名；og:description > description
func buildPreview(rawURL, domain string, meta pageMeta) *blog_model.SharedLink {
	title := meta.OGTitle
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = domain
	}

	description := meta.OGDescription
	if description == "" {
		description = meta.Description
	}

	return &blog_model.SharedLink{
		URL:         rawURL,
		Title:       title,
		Description: description,
		Thumbnail:   meta.OGImage,
		Domain:      domain,
	}
}
