package emissions

import "github.com/prometheus/client_golang/prometheus"

var (
	providerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "carbontrack",
		Subsystem: "emissions",
		Name:      "provider_requests_total",
		Help:      "Number of estimation requests sent to the external provider.",
	}, []string{"category"})
	providerFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "carbontrack",
		Subsystem: "emissions",
		Name:      "provider_fallbacks_total",
		Help:      "Number of estimations that fell back to the static factor tables.",
	}, []string{"category"})
	estimateCacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "carbontrack",
		Subsystem: "emissions",
		Name:      "estimate_cache_hits_total",
		Help:      "Number of estimations served from the estimate cache.",
	}, []string{"category"})
)

func init() {
	prometheus.MustRegister(providerRequests, providerFallbacks, estimateCacheHits)
}
