package parallelisation

import (
	"context"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if err == nil {
		return nil
	}
	cause := context.Cause(ctx)
	if cause == nil || commonerrors.Any(err, cause) {
		return err
	}
	return commonerrors.WrapError(err, cause, "")
}

type ContextualFunc func(ctx context.Context) error

// ContextualFunctionGroup runs functions which all share the context passed to Execute.
type ContextualFunctionGroup struct {
	ExecutionGroup[ContextualFunc]
}

// NewContextualGroup returns a group executing contextual functions.
func NewContextualGroup(options ...StoreOption) *ContextualFunctionGroup {
	return &ContextualFunctionGroup{
		ExecutionGroup: *NewExecutionGroup[ContextualFunc](func(ctx context.Context, contextualF ContextualFunc) error {
			if contextualF == nil {
				return commonerrors.UndefinedVariable("function")
			}
			return contextualF(ctx)
		}, options...),
	}
}

// ForEach runs all the contextual functions according to the store options and waits for them to return.
func ForEach(ctx context.Context, executionOptions *StoreOptions, contextualFunc ...ContextualFunc) error {
	group := NewContextualGroup(executionOptions.Options()...)
	group.RegisterFunction(contextualFunc...)
	return group.Execute(ctx)
}
