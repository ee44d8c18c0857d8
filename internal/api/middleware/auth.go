package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
)

type userIDKey struct{}

// Auth требует заголовок X-User-ID с числовым идентификатором пользователя
// Аутентификацию выполняет API gateway; сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: "требуется заголовок X-User-ID"})
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: "некорректный X-User-ID"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
