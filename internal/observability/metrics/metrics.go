package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
	Pending Outcome = "pending"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once          sync.Once
	metricsRouter *chi.Mux

	defaultHistogramBucketsSeconds = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	rpcAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "electrumx",
		Subsystem: "rpc",
		Name:      "attempts_total",
		Help:      "Total HTTP attempts against upstream URIs, by method and outcome.",
	}, []string{"method", "outcome"})

	rpcAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "electrumx",
		Subsystem: "rpc",
		Name:      "attempt_duration_seconds",
		Help:      "Histogram of single upstream attempt durations in seconds.",
		Buckets:   defaultHistogramBucketsSeconds,
	}, []string{"method", "outcome"})

	endpointSwitchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "electrumx",
		Subsystem: "rpc",
		Name:      "endpoint_switches_total",
		Help:      "Total rotations to the next base URI after the per-URI retry budget ran out.",
	}, []string{"method"})

	rpcExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "electrumx",
		Subsystem: "rpc",
		Name:      "exhausted_total",
		Help:      "Total calls that failed on every base URI.",
	}, []string{"method"})

	utxoPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "electrumx",
		Subsystem: "utxo",
		Name:      "polls_total",
		Help:      "Total listunspent polls made while waiting for a spendable UTXO.",
	}, []string{"outcome"})
)

// Init starts serving the default registry on addr. Only the first call has
// any effect.
func Init(addr string) {
	once.Do(func() {
		initMetricsRouter(addr)
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(addr string) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		err := http.ListenAndServe(addr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", addr)
		}
	}()
}

// StartRPCAttemptTimer starts a timer for one upstream attempt of method.
func StartRPCAttemptTimer(method string) func(outcome Outcome) {
	startTime := time.Now()
	return func(outcome Outcome) {
		duration := time.Since(startTime).Seconds()
		rpcAttemptsTotal.WithLabelValues(method, outcome.String()).Inc()
		rpcAttemptDuration.WithLabelValues(method, outcome.String()).Observe(duration)
	}
}

func RecordEndpointSwitch(method string) {
	endpointSwitchesTotal.WithLabelValues(method).Inc()
}

func RecordExhausted(method string) {
	rpcExhaustedTotal.WithLabelValues(method).Inc()
}

// RecordUtxoPoll counts one poll; Success means a spendable UTXO was found.
func RecordUtxoPoll(outcome Outcome) {
	utxoPollsTotal.WithLabelValues(outcome.String()).Inc()
}
