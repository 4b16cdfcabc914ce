package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const htmxKey contextKey = "htmx"

// HTMXRequest is what the htmx request headers say about a request.
type HTMXRequest struct {
	Enabled bool
	Target  string // HX-Target: id of the element being swapped
	Trigger string // HX-Trigger: id of the element that fired
}

// HTMX parses the htmx request headers once and stores them in the context.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hx := HTMXRequest{
			Enabled: r.Header.Get("HX-Request") == "true",
			Target:  r.Header.Get("HX-Target"),
			Trigger: r.Header.Get("HX-Trigger"),
		}
		ctx := context.WithValue(r.Context(), htmxKey, hx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HTMXFrom returns the parsed headers, or the zero value when the HTMX
// middleware did not run.
func HTMXFrom(r *http.Request) HTMXRequest {
	hx, _ := r.Context().Value(htmxKey).(HTMXRequest)
	return hx
}

func IsHTMX(r *http.Request) bool {
	return HTMXFrom(r).Enabled
}

// TriggerEvent asks htmx to dispatch event on the client after the swap.
// It must be called before the body is written.
func TriggerEvent(w http.ResponseWriter, event string) {
	w.Header().Set("HX-Trigger", event)
}
