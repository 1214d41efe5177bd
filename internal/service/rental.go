package service

import (
	"context"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
)

// RentalReturn - данные закрытия entrega
type RentalReturn struct {
	ReturnDate     string `json:"fechaDevolucion"`
	ReturnPlace    string `json:"lugarDevolucion"`
	ReturnOdometer int    `json:"kilometrajeDevolucion"`
	Observations   string `json:"observaciones,omitempty"`
}

// RentalService - тонкая обертка над клиентом бэкенда
// для ресурса entrega
type RentalService struct {
	api    API
	logger logger.Logger
}

// NewRentalService создает сервис выдач
func NewRentalService(api API, log logger.Logger) *RentalService {
	return &RentalService{api: api, logger: log}
}

// List возвращает все выдачи
func (s *RentalService) List(ctx context.Context) ([]domain.Rental, error) {
	return fetchList[domain.Rental](ctx, s.api, "/entregas")
}

// Get возвращает выдачу по id
func (s *RentalService) Get(ctx context.Context, id string) (*domain.Rental, error) {
	return fetchOne[domain.Rental](ctx, s.api, "/entrega/"+id, domain.ErrRentalNotFound)
}

// ByVehicle возвращает выдачи указанного автомобиля
func (s *RentalService) ByVehicle(ctx context.Context, vehicleID string) ([]domain.Rental, error) {
	return fetchList[domain.Rental](ctx, s.api, "/entregas/vehiculo/"+vehicleID)
}

// ByClient возвращает выдачи указанного клиента
func (s *RentalService) ByClient(ctx context.Context, clientID string) ([]domain.Rental, error) {
	return fetchList[domain.Rental](ctx, s.api, "/entregas/cliente/"+clientID)
}

// Create создает выдачу
func (s *RentalService) Create(ctx context.Context, draft *domain.Rental) (*domain.Envelope, error) {
	return s.api.Post(ctx, "/entrega", draft)
}

// Finalize закрывает выдачу: дата, место и километраж возврата
func (s *RentalService) Finalize(ctx context.Context, id string, ret *RentalReturn) (*domain.Envelope, error) {
	s.logger.Info("Finalizing rental", map[string]interface{}{"id": id})
	return s.api.Patch(ctx, "/entrega/"+id+"/finalizar", ret)
}

// Remove удаляет выдачу по id
func (s *RentalService) Remove(ctx context.Context, id string) (*domain.Envelope, error) {
	s.logger.Info("Deleting rental", map[string]interface{}{"id": id})
	return s.api.Delete(ctx, "/entrega/"+id)
}
