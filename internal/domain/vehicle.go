package domain

import (
	"regexp"
	"strings"
)

// VehicleStatus представляет состояние транспортного средства в автопарке
type VehicleStatus string

const (
	StatusAvailable      VehicleStatus = "DISPONIBLE"    // Свободен, может быть выдан
	StatusRented         VehicleStatus = "ALQUILADO"     // Выдан по действующей entrega
	StatusMaintenance    VehicleStatus = "MANTENIMIENTO" // В ремонте/обслуживании
	StatusDecommissioned VehicleStatus = "BAJA"          // Списан
)

// VehicleStatuses - все допустимые состояния, в порядке отображения
var VehicleStatuses = []VehicleStatus{
	StatusAvailable,
	StatusRented,
	StatusMaintenance,
	StatusDecommissioned,
}

// IsValid проверяет, что статус входит в перечисление
func (s VehicleStatus) IsValid() bool {
	for _, known := range VehicleStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// platePattern - ожидаемый формат патента: 6-7 символов, буквы и цифры.
// Бэкенд формат не навязывает, проверка выполняется только в формах.
var platePattern = regexp.MustCompile(`^[A-Z0-9]{6,7}$`)

// Vehicle - транспортное средство автопарка.
// Поля и wire-имена заданы внешним бэкендом.
type Vehicle struct {
	ID                string        `json:"id"`
	InternalNumber    string        `json:"nroInterno"`
	Plate             string        `json:"patente"`
	Brand             string        `json:"marca"`
	Model             string        `json:"modelo"`
	Designation       string        `json:"designacion"`
	AcquisitionDate   string        `json:"fechaAdquisicion"`
	EngineNumber      string        `json:"nroMotor"`
	ChassisNumber     string        `json:"nroChasis"`
	TitleReference    string        `json:"titulo"`
	Status            VehicleStatus `json:"estado"`
	Responsible       string        `json:"responsable"`
	Ministry          string        `json:"ministerio"`
	Price             float64       `json:"precio"`
	InsuranceCompany  string        `json:"compania"`
	PolicyNumber      string        `json:"nroPoliza"`
	InsuranceExpires  string        `json:"vencimientoPoliza"`
}

// NormalizePlate убирает пробелы и приводит патент к верхнему регистру
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}

// ValidPlate проверяет патент против ожидаемого формата
func ValidPlate(plate string) bool {
	return platePattern.MatchString(NormalizePlate(plate))
}
