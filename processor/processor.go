// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/txprocessor/chain"
	"github.com/ava-labs/txprocessor/state"
)

var (
	ErrUnknownHandler   = errors.New("no handler registered for family")
	ErrDuplicateHandler = errors.New("handler already registered for family")
)

// Family identifies a registered handler.
type Family struct {
	Name    string
	Version string
}

func (f Family) String() string {
	return f.Name + "/" + f.Version
}

// Processor routes requests to the [chain.Handler] registered for their
// family and version. Each handler only sees the namespaces it declared.
type Processor struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics

	l        sync.RWMutex
	handlers map[Family]chain.Handler
}

func New(log logging.Logger, tracer trace.Tracer, r prometheus.Registerer) (*Processor, error) {
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:      log,
		tracer:   tracer,
		metrics:  m,
		handlers: make(map[Family]chain.Handler),
	}, nil
}

// Register adds [h] for every version it supports. Registration is
// all-or-nothing.
func (p *Processor) Register(h chain.Handler) error {
	p.l.Lock()
	defer p.l.Unlock()

	versions := h.FamilyVersions()
	for _, version := range versions {
		f := Family{Name: h.FamilyName(), Version: version}
		if _, ok := p.handlers[f]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateHandler, f)
		}
	}
	for _, version := range versions {
		f := Family{Name: h.FamilyName(), Version: version}
		p.handlers[f] = h
		p.log.Info("registered handler",
			zap.Stringer("family", f),
			zap.Int("namespaces", len(h.Namespaces())),
		)
	}
	return nil
}

// Families returns the registered families sorted by name and version.
func (p *Processor) Families() []Family {
	p.l.RLock()
	families := maps.Keys(p.handlers)
	p.l.RUnlock()

	slices.SortFunc(families, func(a, b Family) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		case a.Version < b.Version:
			return -1
		case a.Version > b.Version:
			return 1
		default:
			return 0
		}
	})
	return families
}

func (p *Processor) handler(f Family) (chain.Handler, bool) {
	p.l.RLock()
	defer p.l.RUnlock()

	h, ok := p.handlers[f]
	return h, ok
}

// Process applies [req] against [st] and reports the outcome. The returned
// error is the same one recorded in the result and always carries one of
// [chain.ErrInvalidTransaction] or [chain.ErrInternal].
func (p *Processor) Process(ctx context.Context, req *chain.Request, st state.Context) (*chain.Result, error) {
	f := Family{Name: req.FamilyName, Version: req.FamilyVersion}
	ctx, span := p.tracer.Start(ctx, "Processor.Process", oteltrace.WithAttributes(
		attribute.String("txID", req.ID.String()),
		attribute.String("family", f.String()),
		attribute.Int("payload", len(req.Payload)),
	))
	defer span.End()

	h, ok := p.handler(f)
	if !ok {
		err := chain.InvalidTransaction(fmt.Errorf("%w: %s", ErrUnknownHandler, f))
		p.metrics.rejected.WithLabelValues(req.FamilyName).Inc()
		span.SetStatus(codes.Error, err.Error())
		return chain.NewResult(req, err), err
	}

	rec := state.NewRecorder(state.NewScoped(st, h.Namespaces()))
	start := time.Now()
	err := h.Apply(ctx, req, rec)
	p.metrics.applyLatency.Observe(float64(time.Since(start)))
	if err != nil && !chain.IsClassified(err) {
		// Handlers classify their own failures; anything else, including a
		// namespace violation, is a fault of the processor.
		err = chain.Internal(err)
	}

	result := chain.NewResult(req, err)
	result.Committed = rec.Committed()
	result.Reads = rec.Reads()
	result.Writes = rec.Writes()
	span.SetAttributes(
		attribute.Int64("reads", result.Reads),
		attribute.Int64("writes", result.Writes),
	)

	switch {
	case err == nil:
		p.metrics.applied.WithLabelValues(req.FamilyName).Inc()
	case errors.Is(err, chain.ErrInvalidTransaction):
		p.metrics.rejected.WithLabelValues(req.FamilyName).Inc()
		span.SetStatus(codes.Error, err.Error())
		p.log.Debug("rejected transaction",
			zap.Stringer("txID", req.ID),
			zap.Stringer("family", f),
			zap.Error(err),
		)
	default:
		p.metrics.internal.WithLabelValues(req.FamilyName).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.log.Error("failed to apply transaction",
			zap.Stringer("txID", req.ID),
			zap.Stringer("family", f),
			zap.Error(err),
		)
	}
	return result, err
}
