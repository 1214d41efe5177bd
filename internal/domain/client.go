package domain

import (
	"regexp"
	"time"
)

// ClientType представляет тип клиента
type ClientType string

const (
	ClientIndividual ClientType = "PERSONA" // Физическое лицо
	ClientCompany    ClientType = "EMPRESA" // Юридическое лицо
)

// IsValid проверяет, что тип клиента входит в перечисление
func (t ClientType) IsValid() bool {
	return t == ClientIndividual || t == ClientCompany
}

// emailPattern - простая проверка формата email, без попытки
// покрыть весь RFC 5322
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail проверяет строку против простого email формата
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Client - клиент проката.
// Тип клиента неизменяем после создания: PERSONA использует nombre,
// EMPRESA использует razonSocial, второе поле остается пустым.
type Client struct {
	ID          string     `json:"id"`
	Type        ClientType `json:"tipoCliente"`
	Name        string     `json:"nombre,omitempty"`
	CompanyName string     `json:"razonSocial,omitempty"`
	DNICuit     string     `json:"dniCuit"`
	Phone       string     `json:"telefono"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DisplayName возвращает имя или razón social в зависимости от типа
func (c *Client) DisplayName() string {
	if c.Type == ClientCompany {
		return c.CompanyName
	}
	return c.Name
}
