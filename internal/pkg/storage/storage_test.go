package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStore_Roundtrip - значения переживают переоткрытие хранилища
func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("token", "tok-123"))
	require.NoError(t, store.Set("user", `{"email":"admin@renting.gob.ar"}`))

	// Переоткрываем с того же файла
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	token, ok := reopened.Get("token")
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)

	user, ok := reopened.Get("user")
	require.True(t, ok)
	assert.Contains(t, user, "admin@renting.gob.ar")
}

// TestFileStore_MissingFile - отсутствующий файл дает пустое
// хранилище, а не ошибку
func TestFileStore_MissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	_, ok := store.Get("token")
	assert.False(t, ok)
}

// TestFileStore_CorruptFile - нечитаемый файл состояния это ошибка
func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

// TestFileStore_SetAll - несколько значений записываются одной операцией
func TestFileStore_SetAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetAll(map[string]string{
		"token": "tok",
		"user":  "{}",
	}))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	_, okToken := reopened.Get("token")
	_, okUser := reopened.Get("user")
	assert.True(t, okToken)
	assert.True(t, okUser)
}

// TestFileStore_Delete - удаление убирает ключи и с диска
func TestFileStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetAll(map[string]string{"token": "tok", "user": "{}"}))
	require.NoError(t, store.Delete("token", "user"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok := reopened.Get("token")
	assert.False(t, ok)
}

// TestMemoryStore - хранилище в памяти для тестов
func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("token", "tok"))
	token, ok := store.Get("token")
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Delete("token"))
	_, ok = store.Get("token")
	assert.False(t, ok)
}
