// Package metrics provides optional instrumentation of the session lifecycle.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector receives lifecycle events from the session manager.
type Collector interface {
	SessionValidated(outcome string)
	CacheHit()
	CacheMiss()
	LoginAttempt(method string, success bool)
	RegistrationAttempt(success bool)
	ProfileFetched()
}

// Validation outcomes reported via SessionValidated.
const (
	OutcomeNone          = "none"
	OutcomeExpired       = "expired"
	OutcomeAuthenticated = "authenticated"
	OutcomeUnavailable   = "profile_unavailable"
)

// PrometheusCollector implements Collector on Prometheus counters.
type PrometheusCollector struct {
	validations   *prometheus.CounterVec
	cache         *prometheus.CounterVec
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	fetches       prometheus.Counter
}

var _ Collector = (*PrometheusCollector)(nil)

// NewCollector creates a PrometheusCollector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fellowship_session_validations_total",
			Help: "Startup session validations by outcome.",
		}, []string{"outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fellowship_profile_cache_total",
			Help: "Profile cache lookups by result.",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fellowship_logins_total",
			Help: "Login attempts by method and result.",
		}, []string{"method", "result"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fellowship_registrations_total",
			Help: "Registration attempts by result.",
		}, []string{"result"}),
		fetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fellowship_profile_fetches_total",
			Help: "Remote profile document fetches.",
		}),
	}

	reg.MustRegister(c.validations, c.cache, c.logins, c.registrations, c.fetches)

	return c
}

func (c *PrometheusCollector) SessionValidated(outcome string) {
	c.validations.WithLabelValues(outcome).Inc()
}

func (c *PrometheusCollector) CacheHit() {
	c.cache.WithLabelValues("hit").Inc()
}

func (c *PrometheusCollector) CacheMiss() {
	c.cache.WithLabelValues("miss").Inc()
}

func (c *PrometheusCollector) LoginAttempt(method string, success bool) {
	c.logins.WithLabelValues(method, result(success)).Inc()
}

func (c *PrometheusCollector) RegistrationAttempt(success bool) {
	c.registrations.WithLabelValues(result(success)).Inc()
}

func (c *PrometheusCollector) ProfileFetched() {
	c.fetches.Inc()
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// Noop is a Collector that discards all events. It is the default when no
// collector is supplied.
type Noop struct{}

var _ Collector = Noop{}

func (Noop) SessionValidated(string)   {}
func (Noop) CacheHit()                 {}
func (Noop) CacheMiss()                {}
func (Noop) LoginAttempt(string, bool) {}
func (Noop) RegistrationAttempt(bool)  {}
func (Noop) ProfileFetched()           {}
