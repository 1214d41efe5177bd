package form

import (
	"context"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
)

// vehicleFields - поля, к которым форма умеет привязывать
// ошибки бэкенда
var vehicleFields = map[string]bool{
	"nroInterno": true,
	"patente":    true,
	"marca":      true,
	"modelo":     true,
	"estado":     true,
	"precio":     true,
	"nroMotor":   true,
	"nroChasis":  true,
	"nroPoliza":  true,
}

// VehicleAPI - операции сервиса автомобилей, нужные форме
type VehicleAPI interface {
	Create(ctx context.Context, draft *domain.Vehicle) (*domain.Envelope, error)
	Update(ctx context.Context, id string, draft *domain.Vehicle) (*domain.Envelope, error)
}

// VehicleForm - черновик создания или редактирования автомобиля.
// Редактирование определяется наличием Draft.ID.
type VehicleForm struct {
	Draft domain.Vehicle
	api   VehicleAPI
}

// NewVehicleForm создает форму с пустым черновиком
func NewVehicleForm(api VehicleAPI) *VehicleForm {
	return &VehicleForm{
		api: api,
		Draft: domain.Vehicle{
			Status: domain.StatusAvailable,
		},
	}
}

// EditVehicleForm создает форму, заполненную существующей записью
func EditVehicleForm(api VehicleAPI, existing domain.Vehicle) *VehicleForm {
	return &VehicleForm{api: api, Draft: existing}
}

// Validate проверяет обязательные поля и форматы
func (f *VehicleForm) Validate() Errors {
	errs := Errors{}

	if f.Draft.InternalNumber == "" {
		errs["nroInterno"] = msgRequired
	}
	switch {
	case f.Draft.Plate == "":
		errs["patente"] = msgRequired
	case !domain.ValidPlate(f.Draft.Plate):
		errs["patente"] = msgInvalidPlate
	}
	if f.Draft.Brand == "" {
		errs["marca"] = msgRequired
	}
	if f.Draft.Model == "" {
		errs["modelo"] = msgRequired
	}
	if !f.Draft.Status.IsValid() {
		errs["estado"] = msgInvalidStatus
	}

	return errs
}

// Submit валидирует черновик и отправляет его на бэкенд.
// Ровно один сетевой вызов на попытку; при ошибках локальной
// валидации вызова не происходит вовсе.
func (f *VehicleForm) Submit(ctx context.Context) (Errors, error) {
	if errs := f.Validate(); errs.Any() {
		return errs, nil
	}
	f.Draft.Plate = domain.NormalizePlate(f.Draft.Plate)

	var (
		envelope *domain.Envelope
		err      error
	)
	if f.Draft.ID == "" {
		envelope, err = f.api.Create(ctx, &f.Draft)
	} else {
		envelope, err = f.api.Update(ctx, f.Draft.ID, &f.Draft)
	}
	if err != nil {
		return transportErrors(envelope, err), err
	}

	return fromEnvelope(envelope, vehicleFields), nil
}
