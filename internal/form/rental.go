package form

import (
	"context"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/service"
)

// rentalFields - поля, к которым формы выдачи умеют привязывать
// ошибки бэкенда
var rentalFields = map[string]bool{
	"vehiculoId":            true,
	"clienteId":             true,
	"funcionarioEntrega":    true,
	"dniFuncionarioEntrega": true,
	"funcionarioRecibe":     true,
	"dniFuncionarioRecibe":  true,
	"fechaEntrega":          true,
	"lugarEntrega":          true,
	"kilometrajeEntrega":    true,
	"nivelCombustible":      true,
	"fechaDevolucion":       true,
	"lugarDevolucion":       true,
	"kilometrajeDevolucion": true,
}

// RentalAPI - операции сервиса выдач, нужные формам
type RentalAPI interface {
	Create(ctx context.Context, draft *domain.Rental) (*domain.Envelope, error)
	Finalize(ctx context.Context, id string, ret *service.RentalReturn) (*domain.Envelope, error)
}

// RentalForm - черновик новой выдачи
type RentalForm struct {
	Draft domain.Rental
	api   RentalAPI
}

// NewRentalForm создает форму с пустым черновиком
func NewRentalForm(api RentalAPI) *RentalForm {
	return &RentalForm{
		api: api,
		Draft: domain.Rental{
			FuelLevel: domain.FuelFull,
		},
	}
}

// Validate проверяет обязательные поля выдачи
func (f *RentalForm) Validate() Errors {
	errs := Errors{}

	if f.Draft.VehicleID == "" {
		errs["vehiculoId"] = msgRequired
	}
	if f.Draft.ClientID == "" {
		errs["clienteId"] = msgRequired
	}
	if f.Draft.DeliveringOfficial == "" {
		errs["funcionarioEntrega"] = msgRequired
	}
	if f.Draft.DeliveringOfficialDNI == "" {
		errs["dniFuncionarioEntrega"] = msgRequired
	}
	if f.Draft.ReceivingOfficial == "" {
		errs["funcionarioRecibe"] = msgRequired
	}
	if f.Draft.ReceivingOfficialDNI == "" {
		errs["dniFuncionarioRecibe"] = msgRequired
	}
	if f.Draft.DeliveryDate == "" {
		errs["fechaEntrega"] = msgRequired
	}
	if f.Draft.DeliveryPlace == "" {
		errs["lugarEntrega"] = msgRequired
	}
	if f.Draft.DeliveryOdometer < 0 {
		errs["kilometrajeEntrega"] = msgNegativeKM
	}
	if !f.Draft.FuelLevel.IsValid() {
		errs["nivelCombustible"] = msgInvalidFuel
	}

	return errs
}

// Submit валидирует черновик и создает выдачу.
// Ровно один сетевой вызов на попытку.
func (f *RentalForm) Submit(ctx context.Context) (Errors, error) {
	if errs := f.Validate(); errs.Any() {
		return errs, nil
	}

	envelope, err := f.api.Create(ctx, &f.Draft)
	if err != nil {
		return transportErrors(envelope, err), err
	}
	return fromEnvelope(envelope, rentalFields), nil
}

// FinalizeForm - черновик закрытия выдачи.
// deliveryOdometer берется из закрываемой entrega: километраж
// возврата не может быть меньше километража выдачи, равенство
// допустимо (нулевой пробег).
type FinalizeForm struct {
	RentalID         string
	DeliveryOdometer int
	Draft            service.RentalReturn
	api              RentalAPI
}

// NewFinalizeForm создает форму закрытия для существующей выдачи
func NewFinalizeForm(api RentalAPI, rental domain.Rental) *FinalizeForm {
	return &FinalizeForm{
		RentalID:         rental.ID,
		DeliveryOdometer: rental.DeliveryOdometer,
		api:              api,
	}
}

// Validate проверяет обязательные поля возврата и инвариант километража
func (f *FinalizeForm) Validate() Errors {
	errs := Errors{}

	if f.Draft.ReturnDate == "" {
		errs["fechaDevolucion"] = msgRequired
	}
	if f.Draft.ReturnPlace == "" {
		errs["lugarDevolucion"] = msgRequired
	}
	if f.Draft.ReturnOdometer < f.DeliveryOdometer {
		errs["kilometrajeDevolucion"] = msgOdometerBack
	}

	return errs
}

// Submit валидирует возврат и закрывает выдачу.
// При ошибке километража запрос на бэкенд не отправляется.
func (f *FinalizeForm) Submit(ctx context.Context) (Errors, error) {
	if errs := f.Validate(); errs.Any() {
		return errs, nil
	}

	envelope, err := f.api.Finalize(ctx, f.RentalID, &f.Draft)
	if err != nil {
		return transportErrors(envelope, err), err
	}
	return fromEnvelope(envelope, rentalFields), nil
}
