package service

import (
	"context"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Summary - агрегаты для дашборда
type Summary struct {
	TotalVehicles       int
	AvailableVehicles   int
	RentedVehicles      int
	MaintenanceVehicles int
	TotalClients        int
	TotalRentals        int
	ActiveRentals       int

	Vehicles []domain.Vehicle
	Clients  []domain.Client
	Rentals  []domain.Rental
}

// DashboardService собирает данные трех ресурсов для одного экрана
type DashboardService struct {
	vehicles *VehicleService
	clients  *ClientService
	rentals  *RentalService
	logger   logger.Logger
}

// NewDashboardService создает сервис дашборда
func NewDashboardService(v *VehicleService, c *ClientService, r *RentalService, log logger.Logger) *DashboardService {
	return &DashboardService{
		vehicles: v,
		clients:  c,
		rentals:  r,
		logger:   log,
	}
}

// Summary загружает автомобили, клиентов и выдачи параллельно и
// считает агрегаты. Экран рендерится только после завершения всех
// трех запросов; упавший запрос дает пустую коллекцию, а не ошибку
// всего экрана.
func (s *DashboardService) Summary(ctx context.Context) *Summary {
	sum := &Summary{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.vehicles.List(ctx)
		if err != nil {
			s.logger.Warn("Dashboard vehicles fetch failed", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		sum.Vehicles = items
		return nil
	})
	g.Go(func() error {
		items, err := s.clients.List(ctx)
		if err != nil {
			s.logger.Warn("Dashboard clients fetch failed", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		sum.Clients = items
		return nil
	})
	g.Go(func() error {
		items, err := s.rentals.List(ctx)
		if err != nil {
			s.logger.Warn("Dashboard rentals fetch failed", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		sum.Rentals = items
		return nil
	})
	_ = g.Wait()

	sum.TotalVehicles = len(sum.Vehicles)
	for _, v := range sum.Vehicles {
		switch v.Status {
		case domain.StatusAvailable:
			sum.AvailableVehicles++
		case domain.StatusRented:
			sum.RentedVehicles++
		case domain.StatusMaintenance:
			sum.MaintenanceVehicles++
		}
	}

	sum.TotalClients = len(sum.Clients)
	sum.TotalRentals = len(sum.Rentals)
	for _, r := range sum.Rentals {
		if r.IsActive() {
			sum.ActiveRentals++
		}
	}

	return sum
}
