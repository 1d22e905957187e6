package domain

import "context"

// Calculator is the state a front end drives: one expression in flight and
// the latest result.
type Calculator interface {
	Append(value string)
	Clear()
	Evaluate() Result
	Expression() string
	Result() Result
	Display() Display
	Dispatch(a Action) bool
}

// Evaluator turns a finished expression into a display result.
type Evaluator interface {
	Evaluate(expression string) Result
}

// RemoteEvaluator is how the CLI talks to a running calcpad server.
type RemoteEvaluator interface {
	Evaluate(ctx context.Context, expression string) (Display, error)
	Append(ctx context.Context, expression, value string) (Display, error)
	Health(ctx context.Context) error
}
