package listview

import (
	"strings"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
)

// Конфигурации контроллера под каждую из трех таблиц приложения.
// Один и тот же generic-контроллер параметризуется полями поиска,
// сортировками и фильтрами вместо трех копий одной логики по экранам.

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Vehicles возвращает конфигурацию таблицы автомобилей.
// Поиск: патент, марка, модель, внутренний номер.
func Vehicles() Config[domain.Vehicle] {
	return Config[domain.Vehicle]{
		SearchText: func(v domain.Vehicle) []string {
			return []string{v.Plate, v.Brand, v.Model, v.InternalNumber}
		},
		Sorts: map[string]Compare[domain.Vehicle]{
			"patente":    func(a, b domain.Vehicle) int { return compareStrings(a.Plate, b.Plate) },
			"marca":      func(a, b domain.Vehicle) int { return compareStrings(a.Brand, b.Brand) },
			"modelo":     func(a, b domain.Vehicle) int { return compareStrings(a.Model, b.Model) },
			"nroInterno": func(a, b domain.Vehicle) int { return compareStrings(a.InternalNumber, b.InternalNumber) },
			"estado":     func(a, b domain.Vehicle) int { return compareStrings(string(a.Status), string(b.Status)) },
			"precio":     func(a, b domain.Vehicle) int { return compareFloats(a.Price, b.Price) },
		},
	}
}

// VehicleStatusIs - фильтр по точному совпадению статуса
func VehicleStatusIs(status domain.VehicleStatus) Predicate[domain.Vehicle] {
	return func(v domain.Vehicle) bool { return v.Status == status }
}

// Clients возвращает конфигурацию таблицы клиентов.
// Поиск: имя, razón social, DNI/CUIT.
func Clients() Config[domain.Client] {
	return Config[domain.Client]{
		SearchText: func(c domain.Client) []string {
			return []string{c.Name, c.CompanyName, c.DNICuit}
		},
		Sorts: map[string]Compare[domain.Client]{
			"nombre":  func(a, b domain.Client) int { return compareStrings(a.DisplayName(), b.DisplayName()) },
			"dniCuit": func(a, b domain.Client) int { return compareStrings(a.DNICuit, b.DNICuit) },
			"creado": func(a, b domain.Client) int {
				switch {
				case a.CreatedAt.Before(b.CreatedAt):
					return -1
				case a.CreatedAt.After(b.CreatedAt):
					return 1
				default:
					return 0
				}
			},
		},
	}
}

// ClientTypeIs - фильтр по точному совпадению типа клиента
func ClientTypeIs(t domain.ClientType) Predicate[domain.Client] {
	return func(c domain.Client) bool { return c.Type == t }
}

// Rentals возвращает конфигурацию таблицы выдач.
// Поиск: фамилии должностных лиц и места выдачи/возврата.
func Rentals() Config[domain.Rental] {
	return Config[domain.Rental]{
		SearchText: func(r domain.Rental) []string {
			return []string{
				r.DeliveringOfficial,
				r.ReceivingOfficial,
				r.DeliveryPlace,
				r.ReturnPlace,
			}
		},
		Sorts: map[string]Compare[domain.Rental]{
			"fechaEntrega": func(a, b domain.Rental) int { return compareStrings(a.DeliveryDate, b.DeliveryDate) },
			"kilometraje":  func(a, b domain.Rental) int { return compareInts(a.DeliveryOdometer, b.DeliveryOdometer) },
		},
	}
}

// RentalActive - фильтр по состоянию выдачи: активные либо закрытые
func RentalActive(active bool) Predicate[domain.Rental] {
	return func(r domain.Rental) bool { return r.IsActive() == active }
}

// RentalDeliveredBetween - фильтр по диапазону дат выдачи
// (ISO-строки, пустая граница не ограничивает)
func RentalDeliveredBetween(from, to string) Predicate[domain.Rental] {
	return func(r domain.Rental) bool {
		if from != "" && r.DeliveryDate < from {
			return false
		}
		if to != "" && r.DeliveryDate > to {
			return false
		}
		return true
	}
}
