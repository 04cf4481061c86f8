package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/nodegraph/ssvm/core/graph"
	"github.com/nodegraph/ssvm/providers/observability"
)

// startStepSpan opens a span around one Step's Execute call, per SPEC_FULL
// §10. obs may be nil (ambient instrumentation is optional); ctx/span are
// nil-safe throughout.
func (e *Executor) startStepSpan(ctx context.Context, f frame, node graph.Node) (context.Context, observability.Span) {
	if e.obs == nil {
		return ctx, nil
	}
	spanCtx, span := e.obs.StartSpan(ctx, observability.SpanExecutorStep,
		observability.String(observability.AttrNodeClass, node.Class().Name),
		observability.String(observability.AttrNodeID, f.id.String()),
		observability.String(observability.AttrNodeVariant, node.CurrentVariant()),
		observability.Int(observability.AttrStackDepth, len(e.stack)),
	)
	e.obs.Counter(observability.MetricExecutorSteps).Add(spanCtx, 1, observability.String(observability.AttrNodeClass, node.Class().Name))
	return spanCtx, span
}

func (e *Executor) endStepSpan(span observability.Span) {
	if span == nil {
		return
	}
	span.SetAttributes(observability.String(observability.AttrStatus, "ok"))
	span.SetStatus(observability.StatusOK, "")
	span.End()
}

func (e *Executor) recordStepError(ctx context.Context, span observability.Span, err error) {
	if e.obs != nil {
		e.obs.Counter(observability.MetricExecutorStepErrors).Add(ctx, 1,
			observability.String(observability.AttrErrorType, fmt.Sprintf("%T", err)))
		e.obs.Error(ctx, "step failed", observability.Error(err))
	}
	if span == nil {
		return
	}
	span.SetAttributes(observability.String(observability.AttrErrorType, fmt.Sprintf("%T", err)))
	span.RecordError(err)
	span.SetStatus(observability.StatusError, err.Error())
	span.End()
}

// stepDuration records how long one Execute call took, per SPEC_FULL §10.
func (e *Executor) stepDuration(ctx context.Context, since time.Time, class string) {
	if e.obs == nil {
		return
	}
	e.obs.Histogram(observability.MetricExecutorStepDuration).Record(ctx, float64(time.Since(since).Milliseconds()),
		observability.String(observability.AttrNodeClass, class))
}
