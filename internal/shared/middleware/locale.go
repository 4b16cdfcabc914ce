package middleware

import (
	"net/http"

	"github.com/emiliopalmerini/typouniverse/internal/messages"
)

// Localize stores a printer for the request's Accept-Language in the
// context, where handlers and templates read it with messages.FromContext.
func Localize(c *messages.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := c.Printer(r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(messages.NewContext(r.Context(), p)))
		})
	}
}
