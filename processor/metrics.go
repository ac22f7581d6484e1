// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processor

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const familyLabel = "family"

type metrics struct {
	applied  *prometheus.CounterVec
	rejected *prometheus.CounterVec
	internal *prometheus.CounterVec

	applyLatency metric.Averager
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	applyLatency, err := metric.NewAverager(
		"",
		"processor_apply",
		"time spent applying a transaction",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &metrics{
		applyLatency: applyLatency,
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "processor",
			Name:      "applied",
			Help:      "number of transactions applied",
		}, []string{familyLabel}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "processor",
			Name:      "rejected",
			Help:      "number of transactions rejected as invalid",
		}, []string{familyLabel}),
		internal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "processor",
			Name:      "internal_errors",
			Help:      "number of transactions that could not be judged",
		}, []string{familyLabel}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.applied),
		r.Register(m.rejected),
		r.Register(m.internal),
	)
	return m, errs.Err
}
