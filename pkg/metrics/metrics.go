package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NotificationsCreated counts notifications fanned out, by event type.
var NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tastebook_notifications_created_total",
	Help: "Number of notifications created by the fan-out component.",
}, []string{"type"})

// FanoutFailures counts notification creations that failed and were
// swallowed; the triggering mutation still succeeded.
var FanoutFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tastebook_notification_fanout_failures_total",
	Help: "Number of notification creations that failed after a committed mutation.",
}, []string{"type"})

// Serve exposes /metrics on a dedicated listener, separate from the API
// port.
func Serve(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("Metrics listening on :%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
}
