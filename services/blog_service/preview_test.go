package blog_service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pet-blog-api/pkg/apperr"
	"pet-blog-api/pkg/config"
)

func testPreviewService(timeout time.Duration) *PreviewService {
	return NewPreviewService(config.PreviewConfig{
		Timeout:     timeout,
		MaxBodySize: 2 << 20,
	})
}

func TestFetchRejectsBadScheme(t *testing.T) {
	s := testPreviewService(time.Second)

	for _, raw := range []string{"ftp://x.com", "x.com", "", "javascript:alert(1)"} {
		_, err := s.Fetch(context.Background(), raw)
		var verr *apperr.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("url %q: expected validation error, got %v", raw, err)
		}
	}
}

func TestFetchPrefersOpenGraph(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head>
			<title>Y</title>
			<meta property="og:title" content="X">
			<meta name="description" content="plain desc">
			<meta property="og:description" content="og desc">
			<meta property="og:image" content="https://cdn.example.com/pic.jpg">
		</head><body></body></html>`))
	}))
	defer srv.Close()

	s := testPreviewService(time.Second)
	preview, err := s.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if preview.Title != "X" {
		t.Fatalf("og:title should win, got %q", preview.Title)
	}
	if preview.Description != "og desc" {
		t.Fatalf("og:description should win, got %q", preview.Description)
	}
	if preview.Thumbnail != "https://cdn.example.com/pic.jpg" {
		t.Fatalf("unexpected thumbnail: %q", preview.Thumbnail)
	}

	host, _ := url.Parse(srv.URL)
	if preview.Domain != host.Hostname() {
		t.Fatalf("domain = %q, want %q", preview.Domain, host.Hostname())
	}
	if preview.URL != srv.URL {
		t.Fatalf("url should be stored verbatim, got %q", preview.URL)
	}
}

func TestFetchFallsBackToTitleThenHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Only Title</title></head><body></body></html>`))
	}))
	defer srv.Close()

	s := testPreviewService(time.Second)
	preview, err := s.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if preview.Title != "Only Title" {
		t.Fatalf("expected title fallback, got %q", preview.Title)
	}
	if preview.Description != "" || preview.Thumbnail != "" {
		t.Fatalf("description and thumbnail should default to empty")
	}

	// 页面完全没有标题时回退到域名
	bare := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>hello</body></html>`))
	}))
	defer bare.Close()

	preview, err = s.Fetch(context.Background(), bare.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	host, _ := url.Parse(bare.URL)
	if preview.Title != host.Hostname() {
		t.Fatalf("title should fall back to host, got %q", preview.Title)
	}
}

func TestFetchFailures(t *testing.T) {
	t.Run("server error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		s := testPreviewService(time.Second)
		if _, err := s.Fetch(context.Background(), srv.URL); !errors.Is(err, apperr.ErrFetchFailed) {
			t.Fatalf("expected fetch failure, got %v", err)
		}
	})

	t.Run("non-text content type", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte{0x1, 0x2, 0x3})
		}))
		defer srv.Close()

		s := testPreviewService(time.Second)
		if _, err := s.Fetch(context.Background(), srv.URL); !errors.Is(err, apperr.ErrFetchFailed) {
			t.Fatalf("expected fetch failure, got %v", err)
		}
	})

	t.Run("slow site hits timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()

		s := testPreviewService(50 * time.Millisecond)
		if _, err := s.Fetch(context.Background(), srv.URL); !errors.Is(err, apperr.ErrFetchFailed) {
			t.Fatalf("expected fetch failure on timeout, got %v", err)
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		s := testPreviewService(200 * time.Millisecond)
		if _, err := s.Fetch(context.Background(), "http://127.0.0.1:1"); !errors.Is(err, apperr.ErrFetchFailed) {
			t.Fatalf("expected fetch failure, got %v", err)
		}
	})
}

func TestExtractPageMetaFirstWins(t *testing.T) {
	// 重复标签只取第一个
	page := `<html><head>
		<meta property="og:title" content="first">
		<meta property="og:title" content="second">
		<title>t1</title><title>t2</title>
	</head></html>`

	meta, err := extractPageMeta(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if meta.OGTitle != "first" {
		t.Fatalf("expected first og:title, got %q", meta.OGTitle)
	}
	if meta.Title != "t1" {
		t.Fatalf("expected first title, got %q", meta.Title)
	}
}

func TestExtractPageMetaToleratesBrokenMarkup(t *testing.T) {
	page := `<html><head><meta property="og:title" content="Broken page"<title>nope`
	meta, err := extractPageMeta(strings.NewReader(page))
	if err != nil {
		t.Fatalf("html parser should tolerate broken markup: %v", err)
	}
	_ = meta
}

func TestBuildPreviewPrecedence(t *testing.T) {
	cases := []struct {
		name      string
		meta      pageMeta
		wantTitle string
		wantDesc  string
	}{
		{"og wins", pageMeta{Title: "Y", OGTitle: "X", Description: "d", OGDescription: "od"}, "X", "od"},
		{"title fallback", pageMeta{Title: "Y"}, "Y", ""},
		{"host fallback", pageMeta{}, "example.com", ""},
		{"plain description fallback", pageMeta{Description: "d"}, "example.com", "d"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := buildPreview("https://example.com/page", "example.com", c.meta)
			if got.Title != c.wantTitle {
				t.Fatalf("title = %q, want %q", got.Title, c.wantTitle)
			}
			if got.Description != c.wantDesc {
				t.Fatalf("description = %q, want %q", got.Description, c.wantDesc)
			}
		})
	}
}
