package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// flashCookie - одноразовое уведомление, переживающее один редирект
// (замена toast из одностраничной версии)
const flashCookie = "renting_flash"

// Flash - уведомление для следующего отрендеренного экрана
type Flash struct {
	Kind    string `json:"kind"` // success | error
	Message string `json:"message"`
}

// setFlash откладывает уведомление в cookie
func setFlash(w http.ResponseWriter, kind, message string) {
	payload, err := json.Marshal(Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash читает и гасит отложенное уведомление
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Гасим в любом случае: уведомление показывается один раз
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	payload, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	return &flash
}
