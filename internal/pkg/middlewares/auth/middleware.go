package auth

import (
	"net/http"
	"strings"

	"freightbid/internal/pkg/authctx"
	"freightbid/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware проверяет Bearer-токен и кладет личность вызывающего в контекст.
// Авторизация по ролям выполняется отдельно через RequireRole.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims := &tokenClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return key, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid || claims.Subject == "" {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("invalid bearer token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := authctx.WithClaims(r.Context(), authctx.Claims{
				UserID: claims.Subject,
				Role:   authctx.Role(claims.Role),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает запрос только для перечисленных ролей.
func RequireRole(roles ...authctx.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := authctx.FromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.WriteHeader(http.StatusForbidden)
		})
	}
}
