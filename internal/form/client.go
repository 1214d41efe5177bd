package form

import (
	"context"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
)

// clientFields - поля, к которым форма умеет привязывать
// ошибки бэкенда
var clientFields = map[string]bool{
	"tipoCliente": true,
	"nombre":      true,
	"razonSocial": true,
	"dniCuit":     true,
	"telefono":    true,
	"email":       true,
}

// ClientAPI - операции сервиса клиентов, нужные форме
type ClientAPI interface {
	Create(ctx context.Context, draft *domain.Client) (*domain.Envelope, error)
	Update(ctx context.Context, id string, draft *domain.Client) (*domain.Envelope, error)
}

// ClientForm - черновик создания или редактирования клиента.
// originalType фиксирует тип на момент открытия формы: после
// создания клиента его тип неизменяем.
type ClientForm struct {
	Draft        domain.Client
	originalType domain.ClientType
	api          ClientAPI
}

// NewClientForm создает форму с пустым черновиком
func NewClientForm(api ClientAPI) *ClientForm {
	return &ClientForm{
		api: api,
		Draft: domain.Client{
			Type: domain.ClientIndividual,
		},
	}
}

// EditClientForm создает форму, заполненную существующей записью
func EditClientForm(api ClientAPI, existing domain.Client) *ClientForm {
	return &ClientForm{
		api:          api,
		Draft:        existing,
		originalType: existing.Type,
	}
}

// Validate проверяет обязательные поля и форматы.
// PERSONA требует nombre, EMPRESA требует razonSocial;
// второе поле игнорируется.
func (f *ClientForm) Validate() Errors {
	errs := Errors{}

	switch {
	case !f.Draft.Type.IsValid():
		errs["tipoCliente"] = msgInvalidType
	case f.Draft.ID != "" && f.Draft.Type != f.originalType:
		errs["tipoCliente"] = msgImmutableType
	}

	switch f.Draft.Type {
	case domain.ClientIndividual:
		if f.Draft.Name == "" {
			errs["nombre"] = msgRequired
		}
	case domain.ClientCompany:
		if f.Draft.CompanyName == "" {
			errs["razonSocial"] = msgRequired
		}
	}

	if f.Draft.DNICuit == "" {
		errs["dniCuit"] = msgRequired
	}
	if f.Draft.Email != "" && !domain.ValidEmail(f.Draft.Email) {
		errs["email"] = msgInvalidEmail
	}

	return errs
}

// Submit валидирует черновик и отправляет его на бэкенд.
// Ровно один сетевой вызов на попытку.
func (f *ClientForm) Submit(ctx context.Context) (Errors, error) {
	if errs := f.Validate(); errs.Any() {
		return errs, nil
	}

	// Поле, не соответствующее типу, не отправляется
	if f.Draft.Type == domain.ClientIndividual {
		f.Draft.CompanyName = ""
	} else {
		f.Draft.Name = ""
	}

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

	return fromEnvelope(envelope, clientFields), nil
}
