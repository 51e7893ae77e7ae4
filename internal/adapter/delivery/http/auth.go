package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

type tokenVerifier interface {
	Verify(token string) (int64, error)
}

// authenticator puts the user id of a valid bearer token into the request
// context and rejects everything else with 401.
func authenticator(tokens tokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, unauthorizedResponse)
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, unauthorizedResponse)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
		})
	}
}
