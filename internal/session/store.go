package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/gateway"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/storage"
)

// Ключи в персистентном хранилище
const (
	tokenKey = "token"
	userKey  = "user"
)

// API - часть клиента бэкенда, нужная для логина
type API interface {
	Post(ctx context.Context, path string, body interface{}) (*domain.Envelope, error)
}

// Credentials - данные формы логина
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authData - полезная нагрузка ответа POST /user/login
type authData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Store - сессия текущего пользователя: токен и профиль,
// персистентные между перезапусками. Единственное разделяемое
// состояние приложения; все мутации идут через Login/SetAuthData/Logout,
// последняя запись выигрывает.
//
// IsAuthenticated - чистая проверка наличия токена: валидность и срок
// жизни токена здесь не проверяются никогда.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	api     API
	logger  logger.Logger
}

// New создает сессию поверх персистентного хранилища
func New(st storage.Store, log logger.Logger) *Store {
	return &Store{
		storage: st,
		logger:  log,
	}
}

// SetAPI подключает клиента бэкенда для Login.
// Отдельный сеттер разрывает цикл инициализации: клиенту нужен
// источник токена (эта сессия), сессии нужен клиент.
func (s *Store) SetAPI(api API) {
	s.api = api
}

// Login отправляет учетные данные на бэкенд и при успехе
// сохраняет токен и профиль
func (s *Store) Login(ctx context.Context, creds Credentials) (*domain.Envelope, error) {
	envelope, err := s.api.Post(ctx, gateway.LoginPath, creds)
	if err != nil {
		return envelope, err
	}
	if !envelope.Ok {
		return envelope, nil
	}

	var data authData
	if err := envelope.Decode(&data); err != nil {
		return envelope, fmt.Errorf("failed to decode login response: %w", err)
	}
	if data.Token == "" {
		return envelope, domain.ErrEmptyToken
	}

	if err := s.SetAuthData(data.Token, data.User); err != nil {
		return envelope, err
	}

	s.logger.Info("User logged in", map[string]interface{}{
		"email": creds.Email,
	})
	return envelope, nil
}

// SetAuthData атомарно сохраняет токен и профиль: либо записываются
// оба значения, либо ни одного (вызывающий повторяет попытку)
func (s *Store) SetAuthData(token string, user *domain.User) error {
	if token == "" {
		return domain.ErrEmptyToken
	}

	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.SetAll(map[string]string{
		tokenKey: token,
		userKey:  string(profile),
	})
}

// IsAuthenticated сообщает, есть ли в хранилище непустой токен
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token возвращает текущий bearer токен, пустую строку если его нет.
// Реализует gateway.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, _ := s.storage.Get(tokenKey)
	return token
}

// User возвращает сохраненный профиль, nil если сессии нет
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.storage.Get(userKey)
	if !ok || raw == "" {
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// Logout удаляет токен и профиль
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(tokenKey, userKey); err != nil {
		s.logger.Error("Failed to clear session", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	s.logger.Info("Session cleared")
}
