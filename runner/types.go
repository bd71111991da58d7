// Package runner executes a case suite against a problem's solution and
// reports per-case outcomes.
//
// What:
//
//	Run feeds every case of a *cases.Suite to problems.Problem.Solve, compares
//	the answer with the case's expected column and aggregates the results
//	into a Report.
//
// How:
//
//	– Cases run on a golang.org/x/sync/errgroup bounded by Parallelism.
//	– All cases share one deadline (Timeout, default 10s). A case still
//	  running when it expires is reported as StatusTimeout; cases that never
//	  started are reported the same way.
//	– Answers are compared with go-cmp; the diff is kept on failure.
//	– A panicking solution is recovered and reported as StatusError, and so
//	  is an answer go-cmp cannot compare (e.g. unexported struct fields).
//
// Report status:
//
//	– success  every case passed
//	– failed   at least one wrong answer, no errors or timeouts
//	– error    at least one case returned an error or panicked
//	– timeout  at least one case hit the deadline (takes precedence)
//
// Errors (sentinel):
//
//	– ErrNilSuite        if the suite pointer is nil.
//	– ErrNilSolve        if the problem has no Solve function.
//	– ErrProblemMismatch if the suite targets another slug or lacks a
//	  parameter the problem declares.
//	– ErrBadTimeout      if Timeout <= 0.
//	– ErrBadParallelism  if Parallelism < 1.
//
// Example:
//
//	p, _ := problems.Default().Get("linked_list_cycle")
//	rep, err := runner.Run(ctx, p, suite, runner.WithParallelism(4))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rep.Status, rep.Passed, rep.Failed)
package runner

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors returned by Run.
var (
	// ErrNilSuite indicates that a nil *cases.Suite was passed to Run.
	ErrNilSuite = errors.New("runner: suite is nil")

	// ErrNilSolve indicates a problem without a Solve function.
	ErrNilSolve = errors.New("runner: problem has no solve function")

	// ErrProblemMismatch indicates a suite written for a different problem.
	ErrProblemMismatch = errors.New("runner: suite does not match problem")

	// ErrBadTimeout indicates a non-positive Timeout.
	ErrBadTimeout = errors.New("runner: timeout must be positive")

	// ErrBadParallelism indicates Parallelism < 1.
	ErrBadParallelism = errors.New("runner: parallelism must be at least 1")
)

// DefaultTimeout bounds a whole run.
const DefaultTimeout = 10 * time.Second

// Status classifies a case or a whole run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
	StatusTimeout Status = "timeout"
)

// Result is the outcome of one case.
type Result struct {
	Case     string        `yaml:"case"`            // "<problem>[<index>]"
	Index    int           `yaml:"index"`           // row index in the suite
	Status   Status        `yaml:"status"`          // success, failed, error or timeout
	Passed   bool          `yaml:"passed"`          // Status == StatusSuccess
	Expected any           `yaml:"expected"`        // value of the expected column
	Got      any           `yaml:"got"`             // answer returned by Solve, nil on error
	Diff     string        `yaml:"diff,omitempty"`  // cmp.Diff(Expected, Got) when the answer is wrong
	Err      string        `yaml:"error,omitempty"` // error text for StatusError and StatusTimeout
	Duration time.Duration `yaml:"duration"`        // wall time spent in Solve
}

// Report aggregates every Result of one run, ordered by case index.
type Report struct {
	RunID    uuid.UUID     `yaml:"run_id"`
	Problem  string        `yaml:"problem"`
	Status   Status        `yaml:"status"`
	Passed   int           `yaml:"passed"`
	Failed   int           `yaml:"failed"` // every case that did not pass, whatever the reason
	Results  []Result      `yaml:"results"`
	Duration time.Duration `yaml:"duration"`
}

// Options configures Run.
//
// Timeout     – shared deadline for the whole suite. Default DefaultTimeout.
// Parallelism – maximum number of cases solved concurrently. Default 1.
// Logger      – receives per-case debug lines and a run summary. Default nop.
type Options struct {
	Timeout     time.Duration
	Parallelism int
	Logger      *zap.Logger
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Timeout:     DefaultTimeout,
		Parallelism: 1,
		Logger:      zap.NewNop(),
	}
}

// WithTimeout sets the shared deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithParallelism sets how many cases may run at once.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithLogger injects a zap logger. A nil logger keeps the nop default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
