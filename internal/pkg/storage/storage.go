package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store - персистентное key/value хранилище строк.
// Аналог localStorage браузера: два-три небольших значения,
// переживающих перезапуск процесса.
type Store interface {
	// Get возвращает значение по ключу и признак его наличия
	Get(key string) (string, bool)
	// Set записывает одно значение
	Set(key, value string) error
	// SetAll записывает несколько значений одной атомарной операцией
	SetAll(values map[string]string) error
	// Delete удаляет перечисленные ключи
	Delete(keys ...string) error
}

// fileStore хранит значения в одном JSON файле.
// Запись идет через временный файл и rename, чтобы файл
// никогда не оставался наполовину записанным.
type fileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// NewFileStore открывает хранилище по указанному пути.
// Отсутствующий файл означает пустое хранилище, а не ошибку.
func NewFileStore(path string) (Store, error) {
	s := &fileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, fmt.Errorf("failed to parse state file: %w", err)
		}
	}

	return s, nil
}

func (s *fileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *fileStore) Set(key, value string) error {
	return s.SetAll(map[string]string{key: value})
}

func (s *fileStore) SetAll(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range values {
		s.values[key] = value
	}
	return s.flush()
}

func (s *fileStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}
	return s.flush()
}

// flush сбрасывает текущее содержимое на диск. Вызывается под мьютексом.
func (s *fileStore) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// memoryStore - хранилище в памяти для тестов
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *memoryStore) Set(key, value string) error {
	return s.SetAll(map[string]string{key: value})
}

func (s *memoryStore) SetAll(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range values {
		s.values[key] = value
	}
	return nil
}

func (s *memoryStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}
