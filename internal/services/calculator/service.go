package calculator

import (
	"calcpad/internal/builder"
	"calcpad/internal/domain"
	"calcpad/internal/evaluator"
	"calcpad/internal/logger"
)

// Service is the calculator state behind a display.
type Service struct {
	input  builder.Builder
	eval   domain.Evaluator
	result domain.Result
	log    *logger.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithEvaluator replaces the default evaluation pipeline.
func WithEvaluator(e domain.Evaluator) Option { return func(s *Service) { s.eval = e } }

// WithLogger sets the logger used for evaluation outcomes.
func WithLogger(l *logger.Logger) Option { return func(s *Service) { s.log = l } }

// New returns a cleared calculator.
func New(opts ...Option) *Service {
	s := &Service{
		eval:   evaluator.Default,
		result: domain.ResultZero,
		log:    logger.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Append applies one input symbol to the expression.
func (s *Service) Append(value string) { s.input.Append(value) }

// Clear empties the expression and resets the result to "0".
func (s *Service) Clear() {
	s.input.Clear()
	s.result = domain.ResultZero
}

// Evaluate recomputes the result from the current expression and returns it.
func (s *Service) Evaluate() domain.Result {
	s.result = s.eval.Evaluate(s.input.Text())
	s.log.Debug("evaluate %q -> %s", s.input.Text(), s.result)
	return s.result
}

func (s *Service) Expression() string    { return s.input.Text() }
func (s *Service) Result() domain.Result { return s.result }

// Display snapshots both fields for rendering.
func (s *Service) Display() domain.Display {
	return domain.Display{Expression: s.input.Text(), Result: s.result}
}

// Dispatch performs a and reports whether it changed anything a front end
// must re-render.
func (s *Service) Dispatch(a domain.Action) bool {
	switch a.Kind {
	case domain.ActionAppend:
		s.Append(a.Value)
	case domain.ActionClear:
		s.Clear()
	case domain.ActionEvaluate:
		s.Evaluate()
	default:
		return false
	}
	return true
}

// Compile-time assertion that Service implements domain.Calculator.
var _ domain.Calculator = (*Service)(nil)
