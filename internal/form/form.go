package form

import (
	"strings"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
)

// GlobalField - ключ для ошибок, не привязанных к конкретному полю
const GlobalField = "_global"

// Сообщения локальной валидации
const (
	msgRequired      = "campo requerido"
	msgInvalidEmail  = "email inválido"
	msgInvalidPlate  = "patente inválida (6-7 caracteres alfanuméricos)"
	msgInvalidStatus = "estado desconocido"
	msgInvalidFuel   = "nivel de combustible desconocido"
	msgInvalidType   = "tipo de cliente desconocido"
	msgImmutableType = "el tipo de cliente no se puede modificar"
	msgNegativeKM    = "el kilometraje no puede ser negativo"
	msgOdometerBack  = "el kilometraje de devolución no puede ser menor al de entrega"
)

// Errors - карта поле -> сообщение; пока она непуста,
// отправка формы заблокирована
type Errors map[string]string

// Any сообщает, есть ли хоть одна ошибка
func (e Errors) Any() bool {
	return len(e) > 0
}

// Global возвращает ошибку без привязки к полю, если она есть
func (e Errors) Global() string {
	return e[GlobalField]
}

// mapServerErrors переводит строки errores бэкенда в ошибки полей.
// Сопоставление best-effort: первый токен строки, приведенный к
// нижнему регистру, трактуется как имя поля, если такое поле известно
// форме; иначе строка целиком уходит в глобальную ошибку.
func mapServerErrors(errores []string, knownFields map[string]bool) Errors {
	errs := Errors{}
	var global []string

	for _, raw := range errores {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		token := strings.ToLower(strings.Fields(raw)[0])
		token = strings.Trim(token, ":,.")
		if knownFields[token] {
			errs[token] = raw
			continue
		}
		global = append(global, raw)
	}

	if len(global) > 0 {
		errs[GlobalField] = strings.Join(global, "; ")
	}
	return errs
}

// transportErrors превращает ошибку транспортного уровня в глобальную
// ошибку формы: сообщение конверта, если оно есть, иначе текст ошибки
func transportErrors(envelope *domain.Envelope, err error) Errors {
	switch {
	case envelope != nil && envelope.Msg != "":
		return Errors{GlobalField: envelope.Msg}
	case err != nil:
		return Errors{GlobalField: err.Error()}
	default:
		return Errors{GlobalField: "no response"}
	}
}

// fromEnvelope превращает бизнес-отказ бэкенда в ошибки формы.
// Конверт с ok:true дает пустую карту.
func fromEnvelope(envelope *domain.Envelope, knownFields map[string]bool) Errors {
	if envelope == nil {
		return Errors{GlobalField: "no response"}
	}
	if envelope.Ok {
		return Errors{}
	}
	if len(envelope.Errores) > 0 {
		return mapServerErrors(envelope.Errores, knownFields)
	}
	msg := envelope.Msg
	if msg == "" {
		msg = "error desconocido"
	}
	return Errors{GlobalField: msg}
}
