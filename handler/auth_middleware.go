package handler

import (
	"context"
	"food-storefront/common"
	"food-storefront/model"
	"food-storefront/service"
	"net/http"
	"strings"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFrom returns the caller's session set by AuthMiddleware.
func SessionFrom(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(sessionKey).(model.Session)
	return session, ok
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
			err.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
			err.Send(w)
			return
		}

		claims, err := service.ParseAccessToken(headerParts[1])
		if err != nil {
			appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
			appErr.Send(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims.Session())))
	})
}

// OwnerMiddleware only lets restaurant owners through. It must run after
// AuthMiddleware.
func OwnerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFrom(r.Context())
		if !ok || !session.IsOwner() {
			err := common.NewAppError(http.StatusForbidden, "Access denied. Restaurant owner privileges required.", nil)
			err.Send(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionOrError(r *http.Request) (model.Session, *common.AppError) {
	session, ok := SessionFrom(r.Context())
	if !ok {
		return model.Session{}, common.NewAppError(http.StatusUnauthorized, "Invalid session in token", nil)
	}
	return session, nil
}
