package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus 指标定义
var (
	// HTTP 请求相关指标
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// 业务相关指标
	postsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_posts_created_total",
			Help: "创建的帖子总数",
		},
	)

	postViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_post_views_total",
			Help: "帖子详情浏览总数",
		},
	)

	postLikes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_post_likes_total",
			Help: "帖子点赞总数",
		},
	)

	linkPreviews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_link_previews_total",
			Help: "链接预览抓取次数",
		},
		[]string{"status"},
	)

	mediaUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_media_uploads_total",
			Help: "媒体上传次数",
		},
		[]string{"type", "status"},
	)
)

// PrometheusMiddleware HTTP指标采集中间件
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

// RecordPostCreated 记录帖子创建
func RecordPostCreated() {
	postsCreated.Inc()
}

// RecordPostView 记录帖子浏览
func RecordPostView() {
	postViews.Inc()
}

// RecordPostLike 记录帖子点赞
func RecordPostLike() {
	postLikes.Inc()
}

// RecordLinkPreview 记录链接预览抓取结果
func RecordLinkPreview(status string) {
	linkPreviews.WithLabelValues(status).Inc()
}

// RecordMediaUpload 记录媒体上传结果
func RecordMediaUpload(mediaType, status string) {
	mediaUploads.WithLabelValues(mediaType, status).Inc()
}
