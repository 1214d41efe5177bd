package service

import (
	"context"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
)

// ClientService - тонкая обертка над клиентом бэкенда
// для ресурса cliente
type ClientService struct {
	api    API
	logger logger.Logger
}

// NewClientService создает сервис клиентов
func NewClientService(api API, log logger.Logger) *ClientService {
	return &ClientService{api: api, logger: log}
}

// List возвращает всех клиентов
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return fetchList[domain.Client](ctx, s.api, "/clientes")
}

// Get возвращает клиента по id
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return fetchOne[domain.Client](ctx, s.api, "/cliente/"+id, domain.ErrClientNotFound)
}

// FindByDNI ищет клиента по DNI/CUIT
func (s *ClientService) FindByDNI(ctx context.Context, dniCuit string) (*domain.Client, error) {
	return fetchOne[domain.Client](ctx, s.api, "/cliente/buscar/"+dniCuit, domain.ErrClientNotFound)
}

// Create создает клиента
func (s *ClientService) Create(ctx context.Context, draft *domain.Client) (*domain.Envelope, error) {
	return s.api.Post(ctx, "/cliente", draft)
}

// Update обновляет клиента по id
func (s *ClientService) Update(ctx context.Context, id string, draft *domain.Client) (*domain.Envelope, error) {
	return s.api.Patch(ctx, "/cliente/"+id, draft)
}

// Remove удаляет клиента по id
func (s *ClientService) Remove(ctx context.Context, id string) (*domain.Envelope, error) {
	s.logger.Info("Deleting client", map[string]interface{}{"id": id})
	return s.api.Delete(ctx, "/cliente/"+id)
}
