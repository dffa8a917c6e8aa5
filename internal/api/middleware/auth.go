package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/acarlier/MT-BookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном административного доступа
const AdminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "unauthorized"

// AdminAuth возвращает middleware, пропускающий запрос только при
// совпадении заголовка X-Admin-Token с настроенным токеном.
// Сравнение - за константное время.
func AdminAuth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(adminToken)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
