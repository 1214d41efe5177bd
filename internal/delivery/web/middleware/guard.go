package middleware

import "net/http"

// Session - часть сессии, нужная охране маршрутов
type Session interface {
	IsAuthenticated() bool
}

// RequireAuth пускает на экран только аутентифицированных:
// проверка синхронная, без обращения к бэкенду. Неаутентифицированный
// запрос уходит редиректом на /login вместо рендера.
func RequireAuth(session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectAuthenticated - обратная охрана для /login и /:
// уже залогиненный пользователь уходит на /dashboard
func RedirectAuthenticated(session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.IsAuthenticated() {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
