// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/txprocessor/codec"
)

const (
	namespaceLabel = "namespace"
	levelLabel     = "level"
)

// Store traffic is labelled by address namespace, so each transaction
// family's reads and writes can be told apart.
type metrics struct {
	reads   *prometheus.CounterVec
	misses  *prometheus.CounterVec
	writes  *prometheus.CounterVec
	deletes *prometheus.CounterVec

	getLatency    metric.Averager
	commitLatency metric.Averager

	stallStart  time.Time
	writeStall  metric.Averager
	compactions *prometheus.CounterVec
}

func newMetrics(d *Database) (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	errs := wrappers.Errs{}
	m := &metrics{
		getLatency: metric.NewAveragerWithErrs(
			"",
			"pebble_get",
			"time spent reading the addresses of one GetState",
			r,
			&errs,
		),
		commitLatency: metric.NewAveragerWithErrs(
			"",
			"pebble_commit",
			"time spent committing the batch of one SetState",
			r,
			&errs,
		),
		writeStall: metric.NewAveragerWithErrs(
			"",
			"pebble_write_stall",
			"time writes spent stalled on compaction",
			r,
			&errs,
		),
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "reads",
			Help:      "number of addresses read",
		}, []string{namespaceLabel}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "read_misses",
			Help:      "number of addresses read that held no entry",
		}, []string{namespaceLabel}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "writes",
			Help:      "number of addresses set",
		}, []string{namespaceLabel}),
		deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "deletes",
			Help:      "number of addresses deleted",
		}, []string{namespaceLabel}),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pebble",
			Name:      "compactions",
			Help:      "number of compactions started",
		}, []string{levelLabel}),
	}
	errs.Add(
		r.Register(m.reads),
		r.Register(m.misses),
		r.Register(m.writes),
		r.Register(m.deletes),
		r.Register(m.compactions),
		r.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "pebble",
			Name:      "disk_usage",
			Help:      "bytes of disk used by the store",
		}, func() float64 {
			return d.diskUsage()
		})),
	)
	return r, m, errs.Err
}

func (m *metrics) observeRead(addr codec.Address, found bool) {
	ns := addr.Namespace().String()
	m.reads.WithLabelValues(ns).Inc()
	if !found {
		m.misses.WithLabelValues(ns).Inc()
	}
}

func (m *metrics) observeWrite(addr codec.Address, deleted bool) {
	ns := addr.Namespace().String()
	if deleted {
		m.deletes.WithLabelValues(ns).Inc()
		return
	}
	m.writes.WithLabelValues(ns).Inc()
}

func (d *Database) onCompactionBegin(info pebble.CompactionInfo) {
	level := "l1+"
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = "l0"
	}
	d.metrics.compactions.WithLabelValues(level).Inc()
}

func (d *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	d.metrics.stallStart = time.Now()
}

func (d *Database) onWriteStallEnd() {
	d.metrics.writeStall.Observe(float64(time.Since(d.metrics.stallStart)))
}

func (d *Database) diskUsage() float64 {
	if d.closed.Load() {
		return 0
	}
	return float64(d.db.Metrics().DiskSpaceUsage())
}
