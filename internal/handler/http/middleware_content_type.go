package http

import (
	"mime"
	"net/http"
)

// requireJSON rejects any request whose Content-Type is not application/json
// with 415 Unsupported Media Type, before validation or any business logic.
// A missing Content-Type header is rejected the same way.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			writeError(w, http.StatusUnsupportedMediaType, titleWrongMedia,
				`Requests must use the "application/json" content type.`)
			return
		}

		next.ServeHTTP(w, r)
	})
}
