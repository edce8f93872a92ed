package adapter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/numsafe/internal/core/observability/log"
	"github.com/zeusync/numsafe/pkg/validation"
)

// Guard binds a sanitizer to a policy and a reporter. It is the boundary
// between untrusted input and the rest of the system: the returned values are
// the same with or without a reporter attached.
type Guard[T any] struct {
	sanitizer *validation.Sanitizer[T]
	policy    validation.Policy
	reporter  Reporter
}

// NewGuard builds a guard. A nil reporter is replaced with NopReporter.
func NewGuard[T any](s *validation.Sanitizer[T], policy validation.Policy, r Reporter) *Guard[T] {
	if r == nil {
		r = NopReporter{}
	}
	return &Guard[T]{sanitizer: s, policy: policy, reporter: r}
}

func (g *Guard[T]) Policy() validation.Policy { return g.policy }

// Apply sanitizes v. When the policy rejects v the failure is reported and v
// is returned unsanitized; callers that must not forward rejected values use
// TryApply instead.
func (g *Guard[T]) Apply(v T) T {
	out, _, _ := g.TryApply(v)
	return out
}

// TryApply sanitizes v, reports what happened and returns the raw result.
// On rejection out is v.
func (g *Guard[T]) TryApply(v T) (out T, status validation.Status, ok bool) {
	out, status, ok = g.sanitizer.TrySanitize(v, g.policy)
	if !ok {
		g.reporter.Warn("sanitization failed, returning unsanitized", g.fields(v, status)...)
		return v, status, false
	}

	if !g.sanitizer.Traits().Identical(out, v) {
		g.reporter.Warn("value sanitized",
			append(g.fields(v, status), log.String("sanitized", fmt.Sprint(out)))...)
	}
	return out, status, true
}

// Check reports invalid or out-of-range values without changing them.
func (g *Guard[T]) Check(v T) T {
	status := g.sanitizer.Check(v)
	switch {
	case status.IsInvalidNumber():
		g.reporter.Warn("value contains invalid numbers", g.fields(v, status)...)
	case status == validation.StatusOutOfRange:
		g.reporter.Warn("value out of declared range", g.fields(v, status)...)
	}
	return v
}

// ApplyAll sanitizes values concurrently with at most workers goroutines,
// preserving order. Under a rejecting policy the first *validation.Error is
// returned together with the partially filled slice.
func (g *Guard[T]) ApplyAll(ctx context.Context, values []T, workers int) ([]T, error) {
	out := make([]T, len(values))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, v := range values {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sanitized, err := g.sanitizer.Sanitize(v, g.policy)
			if err != nil {
				g.reporter.Warn("batch sanitization rejected value", log.Int("index", i), log.Error(err))
				return err
			}
			out[i] = sanitized
			return nil
		})
	}

	return out, eg.Wait()
}

func (g *Guard[T]) fields(v T, status validation.Status) []log.Field {
	return []log.Field{
		log.String("type", g.sanitizer.Name()),
		log.String("value", fmt.Sprint(v)),
		log.Stringer("status", status),
		log.Stringer("policy", g.policy),
	}
}
