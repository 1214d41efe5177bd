package web

import (
	"net/http"

	"github.com/federicojaime/renting-app-sub000/internal/delivery/web/middleware"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/session"
	"github.com/go-chi/chi/v5"
)

// Router содержит все зависимости для HTTP роутера админки
type Router struct {
	authHandler      *AuthHandler
	dashboardHandler *DashboardHandler
	vehicleHandler   *VehicleHandler
	clientHandler    *ClientHandler
	rentalHandler    *RentalHandler
	reportHandler    *ReportHandler
	session          *session.Store
	renderer         *Renderer
	logger           logger.Logger
}

// NewRouter создает HTTP router
func NewRouter(
	authHandler *AuthHandler,
	dashboardHandler *DashboardHandler,
	vehicleHandler *VehicleHandler,
	clientHandler *ClientHandler,
	rentalHandler *RentalHandler,
	reportHandler *ReportHandler,
	sess *session.Store,
	renderer *Renderer,
	log logger.Logger,
) *Router {
	return &Router{
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		vehicleHandler:   vehicleHandler,
		clientHandler:    clientHandler,
		rentalHandler:    rentalHandler,
		reportHandler:    reportHandler,
		session:          sess,
		renderer:         renderer,
		logger:           log,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))

	// Полноэкранный 404 для неизвестных маршрутов
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.renderer.NotFound(w, nil)
	})

	// Корень: залогиненный уходит на /dashboard, остальные на /login
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if rt.session.IsAuthenticated() {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	// Экран логина (обратная охрана: залогиненных не пускаем)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RedirectAuthenticated(rt.session))
		r.Get("/login", rt.authHandler.LoginPage)
		r.Post("/login", rt.authHandler.Login)
	})

	// Защищенные экраны
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(rt.session))

		r.Post("/logout", rt.authHandler.Logout)
		r.Get("/dashboard", rt.dashboardHandler.Index)
		r.Get("/reports", rt.reportHandler.Index)
		r.Get("/settings", rt.authHandler.Settings)

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", rt.vehicleHandler.List)
			r.Get("/new", rt.vehicleHandler.New)
			r.Post("/new", rt.vehicleHandler.Create)
			r.Get("/{id}", rt.vehicleHandler.Detail)
			r.Get("/{id}/edit", rt.vehicleHandler.Edit)
			r.Post("/{id}/edit", rt.vehicleHandler.Update)
			r.Post("/{id}/delete", rt.vehicleHandler.Delete)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Get("/new", rt.clientHandler.New)
			r.Post("/new", rt.clientHandler.Create)
			r.Get("/{id}", rt.clientHandler.Detail)
			r.Get("/{id}/edit", rt.clientHandler.Edit)
			r.Post("/{id}/edit", rt.clientHandler.Update)
			r.Post("/{id}/delete", rt.clientHandler.Delete)
		})

		r.Route("/rentals", func(r chi.Router) {
			r.Get("/", rt.rentalHandler.List)
			r.Get("/new", rt.rentalHandler.New)
			r.Post("/new", rt.rentalHandler.Create)
			r.Get("/{id}", rt.rentalHandler.Detail)
			r.Get("/{id}/finalize", rt.rentalHandler.Finalize)
			r.Post("/{id}/finalize", rt.rentalHandler.SubmitFinalize)
			r.Post("/{id}/delete", rt.rentalHandler.Delete)
		})
	})

	return r
}
