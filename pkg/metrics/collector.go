// Package metrics exposes Prometheus metrics about passphrase generation and
// strength assessment.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/nchaloult/passgen/pkg/strength"
)

const namespace = "passgen"

// Collector implements passphrase.Observer and records strength tiers.
type Collector struct {
	rejected    *prometheus.CounterVec
	attempts    prometheus.Histogram
	length      prometheus.Histogram
	assessments *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_attempts_rejected_total",
			Help:      "Generation attempts that were discarded or failed, by reason.",
		}, []string{"reason"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_attempts",
			Help:      "Attempts needed to produce an accepted passphrase.",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "passphrase_length",
			Help:      "Length in characters of accepted passphrases.",
			Buckets:   prometheus.LinearBuckets(10, 10, 12),
		}),
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strength_assessments_total",
			Help:      "Strength assessments, by tier.",
		}, []string{"tier"}),
	}

	reg.MustRegister(c.rejected, c.attempts, c.length, c.assessments)
	return c
}

// AttemptRejected counts a rejected attempt.
func (c *Collector) AttemptRejected(reason string) {
	c.rejected.WithLabelValues(reason).Inc()
}

// Generated records an accepted passphrase.
func (c *Collector) Generated(attempts, length int) {
	c.attempts.Observe(float64(attempts))
	c.length.Observe(float64(length))
}

// ObserveTier counts an assessment result.
func (c *Collector) ObserveTier(t strength.Tier) {
	c.assessments.WithLabelValues(t.String()).Inc()
}

// WriteText writes everything g gathers to w in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
