// Package agent decides when characters need paths and plans them,
// one at a time or as a concurrent batch over a shared map.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/foxtrail/internal/grid"
	"github.com/samdwyer/foxtrail/internal/pathfind"
	"github.com/samdwyer/foxtrail/internal/telemetry"
)

// Request asks for a path on behalf of a named agent.
type Request struct {
	Agent string
	Query pathfind.Query
}

// Plan is the outcome of one Request. Err is pathfind.ErrNotFound (or
// wraps it) when no route exists.
type Plan struct {
	Agent  string
	Result pathfind.Result
	Err    error
}

// Found reports whether the plan holds a path.
func (p Plan) Found() bool {
	return p.Err == nil
}

// Planner runs path searches with tracing and logging.
type Planner struct {
	tracer  trace.Tracer
	logger  *slog.Logger
	limit   int
	options []pathfind.Option
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithTracer overrides the tracer used for search spans.
func WithTracer(t trace.Tracer) PlannerOption {
	return func(p *Planner) { p.tracer = t }
}

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) PlannerOption {
	return func(p *Planner) { p.logger = l }
}

// WithConcurrency bounds how many searches PlanAll runs at once.
func WithConcurrency(n int) PlannerOption {
	return func(p *Planner) { p.limit = n }
}

// WithSearchOptions passes options to every search.
func WithSearchOptions(options ...pathfind.Option) PlannerOption {
	return func(p *Planner) { p.options = append(p.options, options...) }
}

// NewPlanner creates a planner with the global tracer and default logger.
func NewPlanner(opts ...PlannerOption) *Planner {
	p := &Planner{
		tracer: telemetry.Tracer("agent"),
		logger: slog.Default(),
		limit:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan runs one search. Only an invalid query is returned as an error;
// not finding a path is reported in the Plan.
func (p *Planner) Plan(ctx context.Context, m grid.Map, req Request) (Plan, error) {
	_, span := p.tracer.Start(ctx, "agent.plan", trace.WithAttributes(
		attribute.String("agent.name", req.Agent),
		attribute.String("path.source", req.Query.Source.String()),
		attribute.String("path.destination", req.Query.Destination.String()),
		attribute.Float64("path.within", req.Query.Within),
	))
	defer span.End()

	res, err := pathfind.Search(m, req.Query, p.options...)
	plan := Plan{Agent: req.Agent, Result: res, Err: err}

	span.SetAttributes(
		attribute.Bool("path.found", err == nil),
		attribute.Int("path.expanded", res.Expanded),
	)

	switch {
	case err == nil:
		span.SetAttributes(
			attribute.Int("path.length", len(res.Path)),
			attribute.Float64("path.cost", res.Cost),
		)
		p.logger.Debug("path planned",
			"agent", req.Agent,
			"from", req.Query.Source,
			"to", req.Query.Destination,
			"steps", len(res.Path)-1,
			"cost", res.Cost,
			"expanded", res.Expanded)
	case errors.Is(err, pathfind.ErrNotFound):
		span.AddEvent("no path", trace.WithAttributes(attribute.String("reason", err.Error())))
		p.logger.Debug("no path",
			"agent", req.Agent,
			"from", req.Query.Source,
			"to", req.Query.Destination,
			"expanded", res.Expanded,
			"err", err)
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.Warn("bad path request", "agent", req.Agent, "err", err)
		return plan, err
	}
	return plan, nil
}

// PlanAll runs the requests concurrently over the shared map and returns
// the plans in request order. An invalid query cancels the batch.
func (p *Planner) PlanAll(ctx context.Context, m grid.Map, reqs []Request) ([]Plan, error) {
	ctx, span := p.tracer.Start(ctx, "agent.plan_all", trace.WithAttributes(
		attribute.Int("agent.requests", len(reqs)),
	))
	defer span.End()

	plans := make([]Plan, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plan, err := p.Plan(ctx, m, req)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	found := 0
	for _, plan := range plans {
		if plan.Found() {
			found++
		}
	}
	span.SetAttributes(attribute.Int("agent.found", found))
	return plans, nil
}
