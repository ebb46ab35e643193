package instrument

import "github.com/prometheus/client_golang/prometheus"

var (
	contextCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "contexts_created",
		Subsystem: "tether",
		Help:      "Number of cancelable contexts derived, labelled by constructor kind.",
	}, []string{"kind"})

	fireCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "fires",
		Subsystem: "tether",
		Help:      "Number of canceler firings observed, labelled by cause class.",
	}, []string{"cause"})

	shortCircuitCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "short_circuits",
		Subsystem: "tether",
		Help:      "Number of derivations short-circuited by an already-canceled parent.",
	})

	liveContexts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "live_contexts",
		Subsystem: "tether",
		Help:      "Number of instrumented contexts that have not yet fired.",
	})
)

func init() {
	prometheus.MustRegister(contextCount)
	prometheus.MustRegister(fireCount)
	prometheus.MustRegister(shortCircuitCount)
	prometheus.MustRegister(liveContexts)
}
