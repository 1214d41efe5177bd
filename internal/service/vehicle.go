package service

import (
	"context"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
)

// VehicleService - тонкая обертка над клиентом бэкенда
// для ресурса vehiculo
type VehicleService struct {
	api    API
	logger logger.Logger
}

// NewVehicleService создает сервис автомобилей
func NewVehicleService(api API, log logger.Logger) *VehicleService {
	return &VehicleService{api: api, logger: log}
}

// List возвращает все автомобили
func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return fetchList[domain.Vehicle](ctx, s.api, "/vehiculos")
}

// Get возвращает автомобиль по id
func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	return fetchOne[domain.Vehicle](ctx, s.api, "/vehiculo/"+id, domain.ErrVehicleNotFound)
}

// Create создает автомобиль; конверт отдается как есть,
// поле errores интерпретирует форма
func (s *VehicleService) Create(ctx context.Context, draft *domain.Vehicle) (*domain.Envelope, error) {
	return s.api.Post(ctx, "/vehiculo", draft)
}

// Update обновляет автомобиль по id
func (s *VehicleService) Update(ctx context.Context, id string, draft *domain.Vehicle) (*domain.Envelope, error) {
	return s.api.Patch(ctx, "/vehiculo/"+id, draft)
}

// Remove удаляет автомобиль по id
func (s *VehicleService) Remove(ctx context.Context, id string) (*domain.Envelope, error) {
	s.logger.Info("Deleting vehicle", map[string]interface{}{"id": id})
	return s.api.Delete(ctx, "/vehiculo/"+id)
}
