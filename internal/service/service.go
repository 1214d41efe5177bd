package service

import (
	"context"
	"fmt"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
)

// API - клиент бэкенда, видимый сервисам сущностей
type API interface {
	Get(ctx context.Context, path string) (*domain.Envelope, error)
	Post(ctx context.Context, path string, body interface{}) (*domain.Envelope, error)
	Patch(ctx context.Context, path string, body interface{}) (*domain.Envelope, error)
	Delete(ctx context.Context, path string) (*domain.Envelope, error)
}

// fetchList выполняет GET и распаковывает data в список.
// Сервисы сущностей - прямой проброс к клиенту бэкенда: без валидации,
// без кеширования, без повторов; ошибки уходят вызывающему как есть.
func fetchList[T any](ctx context.Context, api API, path string) ([]T, error) {
	envelope, err := api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if !envelope.Ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBackend, envelope.Msg)
	}

	var items []T
	if err := envelope.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return items, nil
}

// fetchOne выполняет GET и распаковывает data в одну запись
func fetchOne[T any](ctx context.Context, api API, path string, notFound error) (*T, error) {
	envelope, err := api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if !envelope.Ok {
		if envelope.Msg == "recurso no encontrado" {
			return nil, notFound
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrBackend, envelope.Msg)
	}

	var item T
	if err := envelope.Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &item, nil
}
