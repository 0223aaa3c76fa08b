// Package prom records dispatch activity in Prometheus metrics.
package prom

import (
	"dispatch/internal/core/domain/model/assignment"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts dispatch attempts by outcome. Successful attempts carry
// an empty reason label; failed attempts carry the classified reason.
type Recorder struct {
	attempts *prometheus.CounterVec
}

// NewRecorder registers dispatch metrics on the default Prometheus registerer.
func NewRecorder() (*Recorder, error) {
	return NewRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewRecorderWithRegistry(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_attempts_total",
		Help: "Total number of dispatch attempts by status and failure reason",
	}, []string{"status", "reason"})

	if err := reg.Register(attempts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			attempts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &Recorder{attempts: attempts}, nil
}

// RecordAttempt increments the attempt counter for one ledger entry.
func (r *Recorder) RecordAttempt(entry *assignment.Entry) {
	if entry == nil {
		return
	}

	reason := ""
	if fr := entry.Reason(); fr != nil {
		reason = fr.String()
	}

	r.attempts.WithLabelValues(entry.Status().String(), reason).Inc()
}
