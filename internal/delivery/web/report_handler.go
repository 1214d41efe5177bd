package web

import (
	"net/http"
	"sort"

	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/service"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ReportHandler обслуживает экран отчетов с графиками
type ReportHandler struct {
	dashboard *service.DashboardService
	logger    logger.Logger
}

// NewReportHandler создает handler отчетов
func NewReportHandler(dashboard *service.DashboardService, log logger.Logger) *ReportHandler {
	return &ReportHandler{
		dashboard: dashboard,
		logger:    log,
	}
}

// Index рендерит страницу отчетов: распределение автопарка по
// статусам и выдачи по месяцам
// GET /reports
func (h *ReportHandler) Index(w http.ResponseWriter, r *http.Request) {
	sum := h.dashboard.Summary(r.Context())

	page := components.NewPage()
	page.PageTitle = "Reportes - Renting"
	page.AddCharts(h.statusPie(sum), h.rentalsBar(sum))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		h.logger.Error("Failed to render reports page", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// statusPie - распределение автопарка по статусам
func (h *ReportHandler) statusPie(sum *service.Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Vehículos por estado"}),
	)

	counts := make(map[string]int)
	for _, v := range sum.Vehicles {
		counts[string(v.Status)]++
	}

	data := make([]opts.PieData, 0, len(counts))
	for status, n := range counts {
		data = append(data, opts.PieData{Name: status, Value: n})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Name < data[j].Name })

	pie.AddSeries("estado", data)
	return pie
}

// rentalsBar - количество выдач по месяцам (по дате entrega)
func (h *ReportHandler) rentalsBar(sum *service.Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Entregas por mes"}),
	)

	counts := make(map[string]int)
	for _, r := range sum.Rentals {
		if len(r.DeliveryDate) >= 7 {
			counts[r.DeliveryDate[:7]]++ // YYYY-MM
		}
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	values := make([]opts.BarData, 0, len(months))
	for _, month := range months {
		values = append(values, opts.BarData{Value: counts[month]})
	}

	bar.SetXAxis(months).AddSeries("entregas", values)
	return bar
}
