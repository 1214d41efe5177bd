package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI записывает вызовы и отдает заготовленные конверты по пути.
// Мьютекс нужен тестам дашборда: три запроса идут параллельно.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []string
	envelopes map[string]*domain.Envelope
	errs      map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		envelopes: make(map[string]*domain.Envelope),
		errs:      make(map[string]error),
	}
}

func (f *fakeAPI) on(path string, payload interface{}) {
	data, _ := json.Marshal(payload)
	f.envelopes[path] = &domain.Envelope{Ok: true, Msg: "ok", Data: data}
}

func (f *fakeAPI) respond(method, path string) (*domain.Envelope, error) {
	f.mu.Lock()
	f.calls = append(f.calls, method+" "+path)
	f.mu.Unlock()
	if err, ok := f.errs[path]; ok {
		return &domain.Envelope{Ok: false, Msg: "no response"}, err
	}
	if envelope, ok := f.envelopes[path]; ok {
		return envelope, nil
	}
	return &domain.Envelope{Ok: true, Msg: "ok"}, nil
}

func (f *fakeAPI) Get(ctx context.Context, path string) (*domain.Envelope, error) {
	return f.respond("GET", path)
}

func (f *fakeAPI) Post(ctx context.Context, path string, body interface{}) (*domain.Envelope, error) {
	return f.respond("POST", path)
}

func (f *fakeAPI) Patch(ctx context.Context, path string, body interface{}) (*domain.Envelope, error) {
	return f.respond("PATCH", path)
}

func (f *fakeAPI) Delete(ctx context.Context, path string) (*domain.Envelope, error) {
	return f.respond("DELETE", path)
}

// TestVehicleService_Paths - сервис бьет в фиксированные шаблоны путей
func TestVehicleService_Paths(t *testing.T) {
	api := newFakeAPI()
	api.on("/vehiculos", []domain.Vehicle{{ID: "v1", Brand: "Toyota"}})
	svc := NewVehicleService(api, logger.NewNoop())
	ctx := context.Background()

	vehicles, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Toyota", vehicles[0].Brand)

	_, err = svc.Get(ctx, "v1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.Vehicle{})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "v1", &domain.Vehicle{})
	require.NoError(t, err)
	_, err = svc.Remove(ctx, "v1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /vehiculos",
		"GET /vehiculo/v1",
		"POST /vehiculo",
		"PATCH /vehiculo/v1",
		"DELETE /vehiculo/v1",
	}, api.calls)
}

// TestClientService_Paths - пути ресурса cliente, включая поиск по DNI
func TestClientService_Paths(t *testing.T) {
	api := newFakeAPI()
	api.on("/cliente/buscar/20-12345678-9", domain.Client{ID: "c1", DNICuit: "20-12345678-9"})
	svc := NewClientService(api, logger.NewNoop())
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	found, err := svc.FindByDNI(ctx, "20-12345678-9")
	require.NoError(t, err)
	assert.Equal(t, "c1", found.ID)

	assert.Equal(t, []string{
		"GET /clientes",
		"GET /cliente/buscar/20-12345678-9",
	}, api.calls)
}

// TestRentalService_Paths - пути ресурса entrega, включая
// связи по автомобилю/клиенту и закрытие
func TestRentalService_Paths(t *testing.T) {
	api := newFakeAPI()
	svc := NewRentalService(api, logger.NewNoop())
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.ByVehicle(ctx, "v1")
	require.NoError(t, err)
	_, err = svc.ByClient(ctx, "c1")
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, "r1", &RentalReturn{ReturnDate: "2026-08-01"})
	require.NoError(t, err)
	_, err = svc.Remove(ctx, "r1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /entregas",
		"GET /entregas/vehiculo/v1",
		"GET /entregas/cliente/c1",
		"PATCH /entrega/r1/finalizar",
		"DELETE /entrega/r1",
	}, api.calls)
}

// TestService_ErrorPassthrough - ошибки шлюза не проглатываются
// и не перезапрашиваются
func TestService_ErrorPassthrough(t *testing.T) {
	api := newFakeAPI()
	api.errs["/vehiculos"] = domain.ErrNoResponse
	svc := NewVehicleService(api, logger.NewNoop())

	_, err := svc.List(context.Background())

	require.ErrorIs(t, err, domain.ErrNoResponse)
	assert.Len(t, api.calls, 1, "без повторов")
}

// TestService_NotFound - "recurso no encontrado" отдается
// доменной ошибкой ресурса
func TestService_NotFound(t *testing.T) {
	api := newFakeAPI()
	api.envelopes["/vehiculo/999"] = &domain.Envelope{Ok: false, Msg: "recurso no encontrado"}
	svc := NewVehicleService(api, logger.NewNoop())

	_, err := svc.Get(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

// TestDashboard_Summary - агрегаты считаются по трем коллекциям
func TestDashboard_Summary(t *testing.T) {
	api := newFakeAPI()
	api.on("/vehiculos", []domain.Vehicle{
		{ID: "v1", Status: domain.StatusAvailable},
		{ID: "v2", Status: domain.StatusRented},
		{ID: "v3", Status: domain.StatusMaintenance},
		{ID: "v4", Status: domain.StatusAvailable},
	})
	api.on("/clientes", []domain.Client{{ID: "c1"}, {ID: "c2"}})
	api.on("/entregas", []domain.Rental{
		{ID: "r1"},
		{ID: "r2", ReturnDate: "2026-07-01"},
	})

	svc := NewDashboardService(
		NewVehicleService(api, logger.NewNoop()),
		NewClientService(api, logger.NewNoop()),
		NewRentalService(api, logger.NewNoop()),
		logger.NewNoop(),
	)

	sum := svc.Summary(context.Background())

	assert.Equal(t, 4, sum.TotalVehicles)
	assert.Equal(t, 2, sum.AvailableVehicles)
	assert.Equal(t, 1, sum.RentedVehicles)
	assert.Equal(t, 1, sum.MaintenanceVehicles)
	assert.Equal(t, 2, sum.TotalClients)
	assert.Equal(t, 2, sum.TotalRentals)
	assert.Equal(t, 1, sum.ActiveRentals)
}

// TestDashboard_PartialFailure - упавший запрос дает пустую
// коллекцию, остальные агрегаты считаются
func TestDashboard_PartialFailure(t *testing.T) {
	api := newFakeAPI()
	api.errs["/vehiculos"] = domain.ErrNoResponse
	api.on("/clientes", []domain.Client{{ID: "c1"}})
	api.on("/entregas", []domain.Rental{})

	svc := NewDashboardService(
		NewVehicleService(api, logger.NewNoop()),
		NewClientService(api, logger.NewNoop()),
		NewRentalService(api, logger.NewNoop()),
		logger.NewNoop(),
	)

	sum := svc.Summary(context.Background())

	assert.Zero(t, sum.TotalVehicles)
	assert.Empty(t, sum.Vehicles)
	assert.Equal(t, 1, sum.TotalClients)
}
