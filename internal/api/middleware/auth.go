package middleware

import (
	"context"
	"net/http"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
)

type ctxKey string

const clientIDKey ctxKey = "clientID"

// HeaderClientID заголовок с идентификатором клиента виджета
const HeaderClientID = "X-Client-ID"

// Auth проверяет наличие идентификатора клиента в заголовке
// и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := r.Header.Get(HeaderClientID)
		if clientID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderClientID)
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIDFromContext возвращает идентификатор клиента, положенный Auth
func ClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(clientIDKey).(string)
	return clientID, ok
}
