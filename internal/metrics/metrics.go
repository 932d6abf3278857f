package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Accounts
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Registration attempts by result",
		},
		[]string{"result"}, // ok|duplicate|invalid|error
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Login attempts by result",
		},
		[]string{"result"}, // ok|unknown_user|bad_password|invalid|error
	)

	// Blogs
	BlogsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blogs_created_total",
			Help: "Blog posts created",
		},
	)
	BlogLikes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_likes_total",
			Help: "Likes applied to blog posts",
		},
	)

	// Mail
	EmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_total",
			Help: "Outbound emails by kind and status",
		},
		[]string{"kind", "status"}, // welcome|new_blog, sent|failed
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
	WorkerTasksDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_tasks_dropped_total",
			Help: "Tasks rejected by the worker pool",
		},
		[]string{"reason"}, // queue_full|stopped
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			RegistrationsTotal,
			LoginsTotal,
			BlogsCreated,
			BlogLikes,
			EmailsTotal,
			WorkerQueueDepth,
			WorkerTasksDropped,
		)
	})
}
