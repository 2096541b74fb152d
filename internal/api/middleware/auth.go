package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
)

// Заголовки, проставляемые шлюзом после проверки сессии.
// Сервис доверяет им и не валидирует токены сам.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	RoleAdmin = "admin"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает идентификатор и роль пользователя из заголовков шлюза
// и кладёт их в контекст запроса. Запросы без X-User-ID отклоняются.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(HeaderUserID)
			if rawID == "" {
				logger.Warn("auth: missing %s header for %s %s", HeaderUserID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "отсутствует идентификатор пользователя")
				return
			}

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("auth: invalid %s header %q for %s %s", HeaderUserID, rawID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "некорректный идентификатор пользователя")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userRoleKey, r.Header.Get(HeaderUserRole))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов.
// Должен стоять после Auth.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r.Context()) {
				userID, _ := GetUserID(r.Context())
				logger.Warn("auth: admin access denied for user=%d to %s %s", userID, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "требуются права администратора")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}

// IsAdmin сообщает, является ли пользователь администратором
func IsAdmin(ctx context.Context) bool {
	role, ok := GetUserRole(ctx)
	return ok && role == RoleAdmin
}
