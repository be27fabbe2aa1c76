package core

import "context"

// Context keys for report options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	verboseKey        contextKey = "verbose"
)

// WithSuppressHeader marks the context so headers and progress lines are not printed.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// withVerbose sets whether per-file summaries should be printed
func withVerbose(ctx context.Context, verbose bool) context.Context {
	return context.WithValue(ctx, verboseKey, verbose)
}

// isVerbose returns whether per-file summaries should be printed
func isVerbose(ctx context.Context) bool {
	val := ctx.Value(verboseKey)
	if val == nil {
		return false
	}
	verbose, ok := val.(bool)
	return ok && verbose && !shouldSuppressHeader(ctx)
}
