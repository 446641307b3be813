package middleware

import (
	"context"
	"net/http"

	"github.com/jykim-dev/welfare-survey/internal/utils"
)

type ctxKey int

const localeKey ctxKey = 1

// Locale resolves the request locale from the lang query param or
// Accept-Language header and stores it in the request context. Korean is the
// default; English is supported for the health/version surface.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		qLang := r.URL.Query().Get("lang")
		aLang := r.Header.Get("Accept-Language")
		locale := utils.DetermineLocale(qLang, aLang, []string{"ko", "en"}, "ko")
		ctx := context.WithValue(r.Context(), localeKey, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext retrieves the locale stored by Locale.
func LocaleFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(localeKey).(string); ok {
		return s
	}
	return "ko"
}
