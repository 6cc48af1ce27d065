// Package middleware HTTP-middleware: идентификация вызывающего и метрики
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vecindad/VCN-ReservationService/internal/api/handlers"
	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// Заголовки, проставляемые вышестоящим шлюзом аутентификации.
// Сервис доверяет им: проверка подлинности - зона ответственности шлюза
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const msgUnauthorized = "требуется аутентификация"

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
)

// Auth извлекает идентификатор и роль пользователя из заголовков
// и кладет их в context. Запросы без X-User-ID отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		role := domain.RoleResident
		if roleStr := r.Header.Get(HeaderUserRole); roleStr != "" {
			role = domain.Role(roleStr)
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// RoleFromContext возвращает роль пользователя из контекста.
// Если роли нет, возвращает роль без привилегий
func RoleFromContext(ctx context.Context) domain.Role {
	if role, ok := ctx.Value(roleKey).(domain.Role); ok {
		return role
	}
	return domain.RoleResident
}
