package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens - источник токена с фиксированным значением
type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, &staticTokens{token: token}, logger.NewNoop())
}

// TestDo_InjectsBearerToken - токен уходит в заголовок Authorization,
// пустой токен заголовка не создает
func TestDo_InjectsBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{name: "токен присутствует", token: "tok-123", wantHeader: "Bearer tok-123"},
		{name: "токена нет", token: "", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			client := newTestClient(t, tt.token, func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				json.NewEncoder(w).Encode(domain.Envelope{Ok: true, Msg: "ok"})
			})

			_, err := client.Get(context.Background(), "/vehiculos")
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, gotHeader)
		})
	}
}

// TestDo_NetworkError - без ответа от бэкенда возвращается
// конверт {ok:false, msg:"no response"}
func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // закрываем сразу: соединение будет отклонено

	client := NewClient(srv.URL, &staticTokens{}, logger.NewNoop())
	envelope, err := client.Get(context.Background(), "/vehiculos")

	require.ErrorIs(t, err, domain.ErrNoResponse)
	require.NotNil(t, envelope)
	assert.False(t, envelope.Ok)
	assert.Equal(t, "no response", envelope.Msg)
	assert.Empty(t, envelope.Data)
}

// TestDo_Unauthorized - 401 вне маршрута логина дергает хук
// инвалидации сессии ровно один раз
func TestDo_Unauthorized(t *testing.T) {
	client := newTestClient(t, "stale-token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(domain.Envelope{Ok: false, Msg: "token inválido"})
	})

	invalidated := 0
	client.OnUnauthorized(func() { invalidated++ })

	envelope, err := client.Get(context.Background(), "/vehiculos")

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, 1, invalidated)
	assert.False(t, envelope.Ok)
	assert.Equal(t, "sesión expirada", envelope.Msg)
}

// TestDo_UnauthorizedOnLogin - 401 на маршруте логина означает
// неверные учетные данные, сессия не инвалидируется
func TestDo_UnauthorizedOnLogin(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(domain.Envelope{Ok: false, Msg: "credenciales inválidas"})
	})

	invalidated := 0
	client.OnUnauthorized(func() { invalidated++ })

	envelope, err := client.Post(context.Background(), LoginPath, map[string]string{})

	assert.NotErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, 0, invalidated)
	assert.False(t, envelope.Ok)
	assert.Equal(t, "credenciales inválidas", envelope.Msg)
}

// TestDo_NotFound - 404 подменяет сообщение на общее
// "recurso no encontrado"
func TestDo_NotFound(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(domain.Envelope{Ok: false, Msg: "Cannot GET /vehiculo/999"})
	})

	envelope, err := client.Get(context.Background(), "/vehiculo/999")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "recurso no encontrado", envelope.Msg)
}

// TestDo_BackendMessagePropagated - прочие ошибки сохраняют
// сообщение бэкенда, при его отсутствии берется текст статуса
func TestDo_BackendMessagePropagated(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    interface{}
		wantMsg string
	}{
		{
			name:    "сообщение бэкенда",
			status:  http.StatusUnprocessableEntity,
			body:    domain.Envelope{Ok: false, Msg: "patente duplicada"},
			wantMsg: "patente duplicada",
		},
		{
			name:    "пустое тело",
			status:  http.StatusBadGateway,
			body:    nil,
			wantMsg: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != nil {
					json.NewEncoder(w).Encode(tt.body)
				}
			})

			envelope, err := client.Get(context.Background(), "/vehiculos")

			require.ErrorIs(t, err, domain.ErrBackend)
			assert.Equal(t, tt.wantMsg, envelope.Msg)
		})
	}
}

// TestDo_BusinessRejectionIsNotError - ok:false с кодом 200
// не считается ошибкой транспорта
func TestDo_BusinessRejectionIsNotError(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.Envelope{
			Ok:      false,
			Msg:     "datos inválidos",
			Errores: []string{"patente requerida"},
		})
	})

	envelope, err := client.Post(context.Background(), "/vehiculo", map[string]string{})

	require.NoError(t, err)
	assert.False(t, envelope.Ok)
	assert.Equal(t, []string{"patente requerida"}, envelope.Errores)
}

// TestDo_DecodesData - успешный ответ отдает data без изменений
func TestDo_DecodesData(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"msg":"ok","data":[{"id":"v1","marca":"Toyota"}]}`))
	})

	envelope, err := client.Get(context.Background(), "/vehiculos")
	require.NoError(t, err)
	require.True(t, envelope.Ok)

	var vehicles []domain.Vehicle
	require.NoError(t, envelope.Decode(&vehicles))
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Toyota", vehicles[0].Brand)
}
