// Package observability registers prometheus instrumentation shared by the
// session and activity layers.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	loginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "session",
		Name:      "login_attempts_total",
		Help:      "Login attempts partitioned by outcome.",
	}, []string{"outcome"})
	sessionRestores = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "session",
		Name:      "restores_total",
		Help:      "Sessions restored from the persistent store.",
	})
	forcedLogouts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "session",
		Name:      "forced_logouts_total",
		Help:      "Logouts triggered by corrupt persisted state.",
	})
	activityGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "activity",
		Name:      "records_generated_total",
		Help:      "Activity records synthesized on cache miss.",
	})
	activityCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitdash",
		Subsystem: "activity",
		Name:      "cache_hits_total",
		Help:      "Activity lookups served from the cache.",
	})
)

func init() {
	prometheus.MustRegister(
		loginAttempts,
		sessionRestores,
		forcedLogouts,
		activityGenerated,
		activityCacheHits,
	)
}

// Login outcomes.
const (
	LoginSuccess    = "success"
	LoginFailure    = "failure"
	LoginSuperseded = "superseded"
)

// RecordLogin counts one login attempt with its outcome.
func RecordLogin(outcome string) { loginAttempts.WithLabelValues(outcome).Inc() }

// RecordSessionRestored counts a session adopted from the persistent store.
func RecordSessionRestored() { sessionRestores.Inc() }

// RecordForcedLogout counts a logout forced by corrupt persisted state.
func RecordForcedLogout() { forcedLogouts.Inc() }

// RecordActivityGenerated counts a cache miss that synthesized a record.
func RecordActivityGenerated() { activityGenerated.Inc() }

// RecordActivityCacheHit counts a lookup served from the cache.
func RecordActivityCacheHit() { activityCacheHits.Inc() }
