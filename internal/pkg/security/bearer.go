package security

import (
	"errors"
	"net/http"
	"strings"
)

var ErrMissingBearerToken = errors.New("missing or malformed bearer token")

// ExtractBearerToken pulls the token from the Authorization header.
func ExtractBearerToken(r *http.Request) (string, error) {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, prefix)
	if !ok || token == "" {
		return "", ErrMissingBearerToken
	}

	return token, nil
}
