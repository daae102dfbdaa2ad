package core

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey is a private type for context keys set by the framework.
type contextKey string

// ClaimsKey holds the verified jwt.MapClaims of an authenticated request.
const ClaimsKey contextKey = "auth_claims"

// RequireAuth validates the Bearer token of the request against the
// configured HMAC secret and stores the verified claims in the request
// context. Requests without a valid token never reach the handler.
func (a *App) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := a.Config().Jwt.AuthSecret
		if secret == "" {
			writeJsonError(w, errorAuthDisabled)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeJsonError(w, errorNoAuthHeader)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			writeJsonError(w, errorInvalidTokenFormat)
			return
		}

		claims, err := parseJwt(tokenString, []byte(secret))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				writeJsonError(w, errorJwtTokenExpired)
				return
			}
			writeJsonError(w, errorJwtInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Claims returns the verified claims of an authenticated request, or
// nil when the request did not pass through RequireAuth.
func Claims(r *http.Request) jwt.MapClaims {
	claims, _ := r.Context().Value(ClaimsKey).(jwt.MapClaims)
	return claims
}

// parseJwt verifies an HS256 token and returns its claims.
func parseJwt(token string, key []byte) (jwt.MapClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	parsed, err := parser.Parse(token, func(t *jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := parsed.Claims.(jwt.MapClaims); ok && parsed.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
