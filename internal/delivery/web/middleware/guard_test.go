package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	authenticated bool
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		wantStatus    int
		wantLocation  string
	}{
		{
			name:          "Анонима уводит на логин",
			authenticated: false,
			wantStatus:    http.StatusSeeOther,
			wantLocation:  "/login",
		},
		{
			name:          "Залогиненного пропускает",
			authenticated: true,
			wantStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &fakeSession{authenticated: tt.authenticated}
			handler := RequireAuth(sess)(okHandler())

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vehicles", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}

func TestRedirectAuthenticated(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		wantStatus    int
		wantLocation  string
	}{
		{
			name:          "Залогиненного уводит на панель",
			authenticated: true,
			wantStatus:    http.StatusSeeOther,
			wantLocation:  "/dashboard",
		},
		{
			name:          "Анонима пропускает к форме логина",
			authenticated: false,
			wantStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &fakeSession{authenticated: tt.authenticated}
			handler := RedirectAuthenticated(sess)(okHandler())

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
