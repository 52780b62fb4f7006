package exitpass

import "context"

type localeContextKey struct{}

// WithLocale attaches the caller's locale tag to ctx. SubmitForm copies
// it into forms that carry no locale of their own.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

func localeFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}
