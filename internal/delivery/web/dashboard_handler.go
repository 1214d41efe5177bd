package web

import (
	"net/http"

	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/service"
	"github.com/federicojaime/renting-app-sub000/internal/session"
)

// DashboardHandler обслуживает главный экран с агрегатами
type DashboardHandler struct {
	dashboard *service.DashboardService
	session   *session.Store
	renderer  *Renderer
	logger    logger.Logger
}

// NewDashboardHandler создает handler дашборда
func NewDashboardHandler(dashboard *service.DashboardService, sess *session.Store, renderer *Renderer, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		session:   sess,
		renderer:  renderer,
		logger:    log,
	}
}

// Index показывает счетчики автопарка, клиентов и выдач
// GET /dashboard
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	sum := h.dashboard.Summary(r.Context())

	// Summary переживает 401 молча (пустые коллекции); если сессии
	// уже нет - шлюз ее очистил и охрана маршрута уведет на /login
	// при следующем переходе. Здесь достаточно проверить напрямую.
	if !h.session.IsAuthenticated() {
		setFlash(w, "error", "Sesión expirada, ingresá nuevamente")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.renderer.Render(w, http.StatusOK, "dashboard.html", map[string]interface{}{
		"Title":   "Panel",
		"Flash":   popFlash(w, r),
		"User":    h.session.User(),
		"Summary": sum,
	})
}
