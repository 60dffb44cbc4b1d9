package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Contact form outcomes: accepted, rejected, failed
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submissions by outcome",
	}, []string{"channel", "outcome"})

	ContactDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_deliveries_total",
		Help: "Contact submission hand-offs per sink and result",
	}, []string{"sink", "result"})

	ModalOpens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_modal_opens_total",
		Help: "Contact overlay opens by preselected category",
	}, []string{"category"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"route"})
)

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
