package graphql

import (
	"context"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyLocale contextKey = "locale"

// LocaleFromContext returns the locale for the current request, "" when unset.
func LocaleFromContext(ctx context.Context) string {
	if v := ctx.Value(CtxKeyLocale); v != nil {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return ""
}

// WithLocale attaches the request locale to context.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, CtxKeyLocale, locale)
}
