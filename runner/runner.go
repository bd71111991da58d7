package runner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvleet/cases"
	"github.com/katalvlaran/lvleet/problems"
)

// Run solves every case of s with p and returns the aggregated Report.
// Case failures, errors and timeouts are recorded in the Report; the error
// return is reserved for invalid arguments.
func Run(ctx context.Context, p problems.Problem, s *cases.Suite, opts ...Option) (*Report, error) {
	// 1) Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate inputs.
	if err := validate(p, s, o); err != nil {
		return nil, err
	}

	// 3) Prepare the shared deadline and the report skeleton.
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	rep := &Report{
		RunID:   uuid.New(),
		Problem: p.Slug,
		Results: make([]Result, len(s.Cases)),
	}
	log := o.Logger.With(
		zap.String("run_id", rep.RunID.String()),
		zap.String("problem", p.Slug),
	)
	log.Debug("run started",
		zap.Int("cases", len(s.Cases)),
		zap.Duration("timeout", o.Timeout),
		zap.Int("parallelism", o.Parallelism),
	)

	// 4) Fan out. Workers never return an error, so gctx only ends with ctx.
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for i, c := range s.Cases {
		i, c := i, c // per-iteration copies for pre-1.22 loop semantics
		g.Go(func() error {
			res := runCase(gctx, p, c)
			rep.Results[i] = res
			log.Debug("case finished",
				zap.String("case", res.Case),
				zap.String("status", string(res.Status)),
				zap.Duration("duration", res.Duration),
			)

			return nil
		})
	}
	_ = g.Wait()
	rep.Duration = time.Since(start)

	// 5) Aggregate.
	summarize(rep)
	log.Info("run finished",
		zap.String("status", string(rep.Status)),
		zap.Int("passed", rep.Passed),
		zap.Int("failed", rep.Failed),
		zap.Duration("duration", rep.Duration),
	)

	return rep, nil
}

// validate checks options and that s was written for p.
func validate(p problems.Problem, s *cases.Suite, o Options) error {
	if s == nil {
		return ErrNilSuite
	}
	if p.Solve == nil {
		return fmt.Errorf("runner: %q: %w", p.Slug, ErrNilSolve)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("runner: timeout %v: %w", o.Timeout, ErrBadTimeout)
	}
	if o.Parallelism < 1 {
		return fmt.Errorf("runner: parallelism %d: %w", o.Parallelism, ErrBadParallelism)
	}
	if s.Problem != p.Slug {
		return fmt.Errorf("runner: suite %q for problem %q: %w", s.Problem, p.Slug, ErrProblemMismatch)
	}
	for _, name := range p.Params {
		if !slices.Contains(s.Params, name) {
			return fmt.Errorf("runner: suite %q lacks parameter %q: %w", s.Problem, name, ErrProblemMismatch)
		}
	}

	return nil
}

// outcome carries a Solve return across the worker goroutine.
type outcome struct {
	got any
	err error
}

// runCase solves c and classifies the answer. Solve runs on its own
// goroutine so that a solution ignoring ctx still yields a timeout result;
// the goroutine exits once Solve returns.
func runCase(ctx context.Context, p problems.Problem, c cases.Case) Result {
	res := Result{
		Case:     c.Name(),
		Index:    c.Index,
		Expected: c.Expected(),
	}
	if err := ctx.Err(); err != nil {
		return timedOut(res, err)
	}

	start := time.Now()
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("runner: %s: panic: %v", c.Name(), r)}
			}
		}()
		got, err := p.Solve(ctx, c)
		done <- outcome{got: got, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-ctx.Done():
		res.Duration = time.Since(start)

		return timedOut(res, ctx.Err())
	}
	res.Duration = time.Since(start)

	switch {
	case errors.Is(out.err, context.DeadlineExceeded):
		return timedOut(res, out.err)
	case out.err != nil:
		res.Status = StatusError
		res.Err = out.err.Error()

		return res
	}

	return compare(res, out.got)
}

// compare classifies got against res.Expected. go-cmp panics on values it
// cannot inspect, such as structs with unexported fields; those cases are
// reported as StatusError carrying the panic text.
func compare(res Result, got any) (out Result) {
	res.Got = got
	defer func() {
		if r := recover(); r != nil {
			out = res
			out.Status = StatusError
			out.Passed = false
			out.Diff = ""
			out.Err = fmt.Sprintf("runner: %s: compare: %v", res.Case, r)
		}
	}()

	if cmp.Equal(res.Expected, got) {
		res.Status = StatusSuccess
		res.Passed = true

		return res
	}
	res.Status = StatusFailed
	res.Diff = cmp.Diff(res.Expected, got)

	return res
}

// timedOut marks res as a timeout, or as an error when the parent context
// was cancelled rather than expired.
func timedOut(res Result, err error) Result {
	res.Status = StatusTimeout
	if errors.Is(err, context.Canceled) {
		res.Status = StatusError
	}
	res.Err = err.Error()

	return res
}

// summarize fills the counters and the overall status of rep.
func summarize(rep *Report) {
	var errored, timedout bool
	for _, r := range rep.Results {
		if r.Passed {
			rep.Passed++
			continue
		}
		rep.Failed++
		switch r.Status {
		case StatusTimeout:
			timedout = true
		case StatusError:
			errored = true
		}
	}

	switch {
	case timedout:
		rep.Status = StatusTimeout
	case errored:
		rep.Status = StatusError
	case rep.Failed > 0:
		rep.Status = StatusFailed
	default:
		rep.Status = StatusSuccess
	}
}

// RunAll runs every suite whose slug is registered in reg, in slug order.
// A suite for an unknown slug aborts with problems.ErrUnknownProblem before
// anything runs.
func RunAll(ctx context.Context, reg *problems.Registry, suites map[string]*cases.Suite, opts ...Option) ([]*Report, error) {
	// 1) Resolve every problem first.
	slugs := make([]string, 0, len(suites))
	for slug := range suites {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)

	probs := make([]problems.Problem, len(slugs))
	for i, slug := range slugs {
		p, err := reg.Get(slug)
		if err != nil {
			return nil, fmt.Errorf("runner: RunAll: %w", err)
		}
		probs[i] = p
	}

	// 2) Run sequentially; each suite gets its own deadline.
	reports := make([]*Report, 0, len(slugs))
	for i, slug := range slugs {
		rep, err := Run(ctx, probs[i], suites[slug], opts...)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
