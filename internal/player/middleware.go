package player

import (
	"net/http"

	"github.com/lumyn/showdown/internal/pkg/message"
	"github.com/lumyn/showdown/internal/pkg/security"
	"github.com/lumyn/showdown/internal/pkg/web"
	"github.com/lumyn/showdown/internal/platform/jwt"
)

// RequireTicket verifies the bearer ticket and puts its claims on the request
// context. In-room endpoints read room and role from the ticket only.
func RequireTicket(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil {
				web.Fail(w, http.StatusUnauthorized, err, message.InvalidTicket, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.Fail(w, http.StatusUnauthorized, err, message.InvalidTicket, nil)
				return
			}

			ctx := ContextWithTicket(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
