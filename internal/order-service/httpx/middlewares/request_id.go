package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ravelar/storefront/internal/pkg/interceptors"
)

// PropagateRequestID copies chi's request id into the context and outgoing
// gRPC metadata, so the coordinator's remote calls carry the same correlation
// id the HTTP access log shows.
func PropagateRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())
		ctx := interceptors.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
