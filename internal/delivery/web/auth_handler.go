package web

import (
	"net/http"

	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/session"
)

// AuthHandler обрабатывает логин, логаут и экран настроек
type AuthHandler struct {
	session  *session.Store
	renderer *Renderer
	logger   logger.Logger
}

// NewAuthHandler создает handler аутентификации
func NewAuthHandler(sess *session.Store, renderer *Renderer, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		session:  sess,
		renderer: renderer,
		logger:   log,
	}
}

// LoginPage показывает форму логина
// GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login.html", map[string]interface{}{
		"Title": "Ingresar",
		"Flash": popFlash(w, r),
	})
}

// Login отправляет учетные данные на бэкенд
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, http.StatusBadRequest, "login.html", map[string]interface{}{
			"Title": "Ingresar",
			"Error": "formulario inválido",
		})
		return
	}

	creds := session.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	envelope, err := h.session.Login(r.Context(), creds)
	if err != nil || !envelope.Ok {
		msg := "credenciales inválidas"
		if envelope != nil && envelope.Msg != "" {
			msg = envelope.Msg
		}
		h.renderer.Render(w, http.StatusUnauthorized, "login.html", map[string]interface{}{
			"Title": "Ingresar",
			"Error": msg,
			"Email": creds.Email,
		})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout завершает сессию
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Settings показывает профиль текущего пользователя
// GET /settings
func (h *AuthHandler) Settings(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "settings.html", map[string]interface{}{
		"Title": "Configuración",
		"User":  h.session.User(),
		"Flash": popFlash(w, r),
	})
}
