package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fiberMetricsOnce sync.Once
	fiberMetrics     *fiberprometheus.FiberPrometheus
)

// FiberMetrics returns the process-wide HTTP metrics middleware. The
// underlying collectors register with the default registry exactly
// once, so repeated server construction stays safe.
func FiberMetrics() *fiberprometheus.FiberPrometheus {
	fiberMetricsOnce.Do(func() {
		fiberMetrics = fiberprometheus.New("devconnect-api")
	})
	return fiberMetrics
}

var (
	// RedisErrors counts Redis errors by operation name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AuthFailures counts rejected authentications by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_auth_failures_total",
		Help: "Total number of rejected authentication attempts by reason",
	}, []string{"reason"})

	// PostsCreated counts created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_posts_created_total",
		Help: "Total number of posts created",
	})

	// GithubProxyRequests counts GitHub repo-listing proxy calls by outcome.
	GithubProxyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_github_proxy_requests_total",
		Help: "Total number of GitHub repository proxy requests by outcome",
	}, []string{"outcome"})
)
