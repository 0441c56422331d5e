package httpapi

import (
	"context"
	"net/http"
)

type contextKey string

const customerIDKey contextKey = "customer_id"

// customerHeader идентифицирует клиента витрины. Аутентификации как
// таковой нет: мобильное приложение передаёт идентификатор своего
// профиля, демо-окружение работает без заголовка.
const customerHeader = "X-Customer-ID"

// defaultCustomerID используется, когда заголовок не передан.
const defaultCustomerID = "1"

func (s *Server) customerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := r.Header.Get(customerHeader)
		if customerID == "" {
			customerID = defaultCustomerID
		}
		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func customerIDFromContext(ctx context.Context) string {
	if customerID, ok := ctx.Value(customerIDKey).(string); ok {
		return customerID
	}
	return ""
}
