package listview

import (
	"fmt"
	"testing"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeVehicles(n int) []domain.Vehicle {
	out := make([]domain.Vehicle, n)
	for i := range out {
		out[i] = domain.Vehicle{
			ID:             fmt.Sprintf("v-%02d", i),
			InternalNumber: fmt.Sprintf("%03d", i),
			Plate:          fmt.Sprintf("AB%03dCD", i),
			Brand:          "Toyota",
			Model:          "Hilux",
			Status:         domain.StatusAvailable,
		}
	}
	return out
}

// TestPaginate_Reconstruction проверяет, что конкатенация всех страниц
// по порядку восстанавливает коллекцию без пропусков и дублей
func TestPaginate_Reconstruction(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 23, 100} {
		for _, size := range []int{1, 3, 10, 25} {
			items := makeVehicles(total)

			rebuilt := make([]domain.Vehicle, 0, total)
			for page := 1; page <= totalPages(total, size); page++ {
				chunk := Paginate(items, page, size)
				assert.LessOrEqual(t, len(chunk), size)
				rebuilt = append(rebuilt, chunk...)
			}

			assert.Equal(t, items, rebuilt,
				"total=%d size=%d", total, size)
		}
	}
}

// TestPaginate_ClampScenario - сценарий из 23 машин по 10 на страницу
func TestPaginate_ClampScenario(t *testing.T) {
	ctrl := New(Vehicles())
	ctrl.Load(makeVehicles(23))

	ctrl.SetPage(1)
	assert.Len(t, ctrl.Visible(), 10)

	ctrl.SetPage(3)
	assert.Len(t, ctrl.Visible(), 3)
	assert.Equal(t, 3, ctrl.TotalPages())

	// Страница 4 вне диапазона: подрезается к 3
	ctrl.SetPage(4)
	assert.Equal(t, 3, ctrl.Page())
	assert.Len(t, ctrl.Visible(), 3)
}

// TestSearch_CaseInsensitive - поиск не зависит от регистра
// и работает по подстроке
func TestSearch_CaseInsensitive(t *testing.T) {
	items := []domain.Vehicle{
		{Plate: "AB123CD", Brand: "Toyota", Model: "Corolla"},
		{Plate: "XY987ZW", Brand: "Ford", Model: "Ranger"},
	}

	for _, term := range []string{"toyota", "TOYOTA", "oyot"} {
		ctrl := New(Vehicles())
		ctrl.Load(items)
		ctrl.SetSearch(term)

		visible := ctrl.Visible()
		require.Len(t, visible, 1, "term=%q", term)
		assert.Equal(t, "Toyota", visible[0].Brand)
	}
}

// TestSearch_FixedFieldSubset - поиск идет только по патенту,
// марке, модели и внутреннему номеру
func TestSearch_FixedFieldSubset(t *testing.T) {
	ctrl := New(Vehicles())
	ctrl.Load([]domain.Vehicle{
		{Plate: "AB123CD", Brand: "Toyota", Model: "Hilux", Responsible: "García"},
	})

	ctrl.SetSearch("garcía")
	assert.Empty(t, ctrl.Visible(), "responsable не входит в поля поиска")

	ctrl.SetSearch("ab123")
	assert.Len(t, ctrl.Visible(), 1)
}

// TestFilter_Idempotent - повторное применение того же фильтра
// не меняет результат
func TestFilter_Idempotent(t *testing.T) {
	ctrl := New(Vehicles())
	items := makeVehicles(8)
	items[2].Status = domain.StatusRented
	items[5].Status = domain.StatusRented
	ctrl.Load(items)

	ctrl.SetFilter("estado", VehicleStatusIs(domain.StatusRented))
	first := ctrl.Visible()

	ctrl.SetFilter("estado", VehicleStatusIs(domain.StatusRented))
	second := ctrl.Visible()

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

// TestFilter_UnsetMatchesAll - снятый фильтр пропускает все записи
func TestFilter_UnsetMatchesAll(t *testing.T) {
	ctrl := New(Vehicles())
	ctrl.Load(makeVehicles(5))

	ctrl.SetFilter("estado", VehicleStatusIs(domain.StatusRented))
	assert.Empty(t, ctrl.Visible())

	ctrl.ClearFilter("estado")
	assert.Len(t, ctrl.Visible(), 5)
}

// TestSort_AscDescReversed - сортировка по имени в обе стороны
// дает зеркальные порядки при отсутствии дублей
func TestSort_AscDescReversed(t *testing.T) {
	ctrl := New(Vehicles())
	ctrl.Load([]domain.Vehicle{
		{Brand: "Renault"},
		{Brand: "Chevrolet"},
		{Brand: "Toyota"},
		{Brand: "Ford"},
	})

	ctrl.SetSort("marca", false)
	asc := ctrl.Visible()
	ctrl.SetSort("marca", true)
	desc := ctrl.Visible()

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].Brand, desc[len(desc)-1-i].Brand)
	}
	assert.Equal(t, "Chevrolet", asc[0].Brand)
	assert.Equal(t, "Toyota", desc[0].Brand)
}

// TestSort_Stable - равные ключи сохраняют исходный порядок коллекции
func TestSort_Stable(t *testing.T) {
	ctrl := New(Vehicles())
	ctrl.Load([]domain.Vehicle{
		{ID: "a", Brand: "Toyota"},
		{ID: "b", Brand: "Ford"},
		{ID: "c", Brand: "Toyota"},
		{ID: "d", Brand: "Toyota"},
	})

	ctrl.SetSort("marca", false)
	visible := ctrl.Visible()

	require.Len(t, visible, 4)
	assert.Equal(t, "b", visible[0].ID)
	assert.Equal(t, []string{"a", "c", "d"},
		[]string{visible[1].ID, visible[2].ID, visible[3].ID})
}

// TestPageReset - смена поиска, фильтра или размера страницы
// возвращает на первую страницу
func TestPageReset(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Controller[domain.Vehicle])
		reset  bool
	}{
		{
			name:   "смена строки поиска",
			mutate: func(c *Controller[domain.Vehicle]) { c.SetSearch("toyota") },
			reset:  true,
		},
		{
			name: "установка фильтра",
			mutate: func(c *Controller[domain.Vehicle]) {
				c.SetFilter("estado", VehicleStatusIs(domain.StatusAvailable))
			},
			reset: true,
		},
		{
			name:   "смена размера страницы",
			mutate: func(c *Controller[domain.Vehicle]) { c.SetPageSize(5) },
			reset:  true,
		},
		{
			name:   "смена сортировки страницу не трогает",
			mutate: func(c *Controller[domain.Vehicle]) { c.SetSort("marca", false) },
			reset:  false,
		},
		{
			name:   "тот же поиск повторно страницу не трогает",
			mutate: func(c *Controller[domain.Vehicle]) { c.SetSearch("") },
			reset:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := New(Vehicles())
			ctrl.Load(makeVehicles(30))
			ctrl.SetPage(2)
			require.Equal(t, 2, ctrl.Page())

			tt.mutate(ctrl)

			if tt.reset {
				assert.Equal(t, 1, ctrl.Page())
			} else {
				assert.Equal(t, 2, ctrl.Page())
			}
		})
	}
}

// TestEmptyCollection - пустая коллекция и фильтр без совпадений
// дают пустую страницу, а не ошибку
func TestEmptyCollection(t *testing.T) {
	ctrl := New(Vehicles())

	assert.Empty(t, ctrl.Visible())
	assert.Equal(t, 1, ctrl.Page())
	assert.Equal(t, 1, ctrl.TotalPages())

	ctrl.Load(makeVehicles(3))
	ctrl.SetSearch("no-such-plate")
	assert.Empty(t, ctrl.Visible())
	assert.Equal(t, 0, ctrl.Total())
}

// TestVisible_Deterministic - одинаковое состояние дает
// одинаковый результат при повторных вызовах
func TestVisible_Deterministic(t *testing.T) {
	ctrl := New(Vehicles())
	ctrl.Load(makeVehicles(23))
	ctrl.SetSearch("ab0")
	ctrl.SetSort("patente", true)
	ctrl.SetPage(1)

	first := ctrl.Visible()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ctrl.Visible())
	}
}

// TestRentalFilters - фильтры состояния и диапазона дат выдач
func TestRentalFilters(t *testing.T) {
	ctrl := New(Rentals())
	ctrl.Load([]domain.Rental{
		{ID: "r1", DeliveryDate: "2026-01-10"},
		{ID: "r2", DeliveryDate: "2026-02-15", ReturnDate: "2026-02-20"},
		{ID: "r3", DeliveryDate: "2026-03-01"},
	})

	ctrl.SetFilter("estado", RentalActive(true))
	visible := ctrl.Visible()
	require.Len(t, visible, 2)

	ctrl.ClearFilter("estado")
	ctrl.SetFilter("fecha", RentalDeliveredBetween("2026-02-01", "2026-02-28"))
	visible = ctrl.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "r2", visible[0].ID)
}
