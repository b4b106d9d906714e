package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BotUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lessonbot", Name: "updates_total", Help: "Processed telegram updates",
	})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lessonbot", Name: "handler_errors_total", Help: "Handler errors",
	})
	Activations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lessonbot", Name: "activations_total", Help: "Successful code redemptions",
	})
	LessonsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lessonbot", Name: "lessons_served_total", Help: "Lessons sent to users",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lessonbot", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(BotUpdates, HandlerErrors, Activations, LessonsServed, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
