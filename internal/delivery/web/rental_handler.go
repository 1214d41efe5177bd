package web

import (
	"net/http"
	"strconv"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/form"
	"github.com/federicojaime/renting-app-sub000/internal/listview"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// RentalHandler обслуживает экраны выдач
type RentalHandler struct {
	rentals  *service.RentalService
	vehicles *service.VehicleService
	clients  *service.ClientService
	renderer *Renderer
	logger   logger.Logger
}

// NewRentalHandler создает handler выдач
func NewRentalHandler(rentals *service.RentalService, vehicles *service.VehicleService, clients *service.ClientService, renderer *Renderer, log logger.Logger) *RentalHandler {
	return &RentalHandler{
		rentals:  rentals,
		vehicles: vehicles,
		clients:  clients,
		renderer: renderer,
		logger:   log,
	}
}

// List показывает таблицу выдач с фильтрами по состоянию
// и диапазону дат
// GET /rentals
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)

	items, err := h.rentals.List(r.Context())
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		flash = &Flash{Kind: "error", Message: fetchFlash(err)}
	}

	ctrl := listview.New(listview.Rentals())
	ctrl.Load(items)

	params := parseListParams(r)
	estado := r.URL.Query().Get("estado")
	switch estado {
	case "activa":
		ctrl.SetFilter("estado", listview.RentalActive(true))
	case "finalizada":
		ctrl.SetFilter("estado", listview.RentalActive(false))
	}
	desde := r.URL.Query().Get("desde")
	hasta := r.URL.Query().Get("hasta")
	if desde != "" || hasta != "" {
		ctrl.SetFilter("fecha", listview.RentalDeliveredBetween(desde, hasta))
	}
	apply(ctrl, params)

	h.renderer.Render(w, http.StatusOK, "rentals.html", map[string]interface{}{
		"Title":      "Entregas",
		"Flash":      flash,
		"Items":      ctrl.Visible(),
		"Total":      ctrl.Total(),
		"Page":       ctrl.Page(),
		"TotalPages": ctrl.TotalPages(),
		"Query":      params.Q,
		"Estado":     estado,
		"Desde":      desde,
		"Hasta":      hasta,
		"Sort":       params.Sort,
		"Desc":       params.Desc,
	})
}

// Detail показывает карточку выдачи с чек-листом комплектации
// GET /rentals/{id}
func (h *RentalHandler) Detail(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		h.renderer.NotFound(w, nil)
		return
	}

	h.renderer.Render(w, http.StatusOK, "rental_detail.html", map[string]interface{}{
		"Title":  "Entrega",
		"Flash":  popFlash(w, r),
		"Rental": rental,
	})
}

// New показывает форму новой выдачи.
// Справочники для выпадающих списков загружаются параллельно;
// экран рендерится после завершения обоих запросов.
// GET /rentals/new
func (h *RentalHandler) New(w http.ResponseWriter, r *http.Request) {
	f := form.NewRentalForm(h.rentals)
	h.renderForm(w, r, http.StatusOK, f, form.Errors{})
}

// Create обрабатывает отправку формы новой выдачи
// POST /rentals/new
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	f := form.NewRentalForm(h.rentals)

	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, f, form.Errors{form.GlobalField: "formulario inválido"})
		return
	}
	fillRentalDraft(&f.Draft, r)

	errs, err := f.Submit(r.Context())
	if err != nil && sessionExpired(w, r, err) {
		return
	}
	if errs.Any() {
		h.renderForm(w, r, http.StatusUnprocessableEntity, f, errs)
		return
	}

	setFlash(w, "success", "Entrega registrada")
	http.Redirect(w, r, "/rentals", http.StatusSeeOther)
}

// Finalize показывает форму закрытия выдачи
// GET /rentals/{id}/finalize
func (h *RentalHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		h.renderer.NotFound(w, nil)
		return
	}

	f := form.NewFinalizeForm(h.rentals, *rental)
	h.renderFinalize(w, http.StatusOK, rental, f, form.Errors{})
}

// SubmitFinalize закрывает выдачу
// POST /rentals/{id}/finalize
func (h *RentalHandler) SubmitFinalize(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		h.renderer.NotFound(w, nil)
		return
	}

	f := form.NewFinalizeForm(h.rentals, *rental)
	if err := r.ParseForm(); err != nil {
		h.renderFinalize(w, http.StatusBadRequest, rental, f, form.Errors{form.GlobalField: "formulario inválido"})
		return
	}

	f.Draft.ReturnDate = r.PostFormValue("fechaDevolucion")
	f.Draft.ReturnPlace = r.PostFormValue("lugarDevolucion")
	f.Draft.ReturnOdometer, _ = strconv.Atoi(r.PostFormValue("kilometrajeDevolucion"))
	f.Draft.Observations = r.PostFormValue("observaciones")

	errs, err := f.Submit(r.Context())
	if err != nil && sessionExpired(w, r, err) {
		return
	}
	if errs.Any() {
		h.renderFinalize(w, http.StatusUnprocessableEntity, rental, f, errs)
		return
	}

	setFlash(w, "success", "Entrega finalizada")
	http.Redirect(w, r, "/rentals", http.StatusSeeOther)
}

// Delete удаляет выдачу
// POST /rentals/{id}/delete
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	envelope, err := h.rentals.Remove(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err != nil:
		if sessionExpired(w, r, err) {
			return
		}
		setFlash(w, "error", fetchFlash(err))
	case !envelope.Ok:
		setFlash(w, "error", envelope.Msg)
	default:
		setFlash(w, "success", "Entrega eliminada")
	}

	http.Redirect(w, r, "/rentals", http.StatusSeeOther)
}

func (h *RentalHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, f *form.RentalForm, errs form.Errors) {
	var (
		vehicles []domain.Vehicle
		clients  []domain.Client
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		items, err := h.vehicles.List(ctx)
		if err != nil {
			h.logger.Warn("Rental form vehicles fetch failed", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		vehicles = items
		return nil
	})
	g.Go(func() error {
		items, err := h.clients.List(ctx)
		if err != nil {
			h.logger.Warn("Rental form clients fetch failed", map[string]interface{}{
				"error": err.Error(),
			})
			return nil
		}
		clients = items
		return nil
	})
	_ = g.Wait()

	// В список попадают только свободные машины
	available := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Status == domain.StatusAvailable || v.ID == f.Draft.VehicleID {
			available = append(available, v)
		}
	}

	h.renderer.Render(w, status, "rental_form.html", map[string]interface{}{
		"Title":      "Nueva entrega",
		"Draft":      f.Draft,
		"Errors":     errs,
		"Vehicles":   available,
		"Clients":    clients,
		"FuelLevels": domain.FuelLevels,
	})
}

func (h *RentalHandler) renderFinalize(w http.ResponseWriter, status int, rental *domain.Rental, f *form.FinalizeForm, errs form.Errors) {
	h.renderer.Render(w, status, "rental_finalize.html", map[string]interface{}{
		"Title":  "Finalizar entrega",
		"Rental": rental,
		"Draft":  f.Draft,
		"Errors": errs,
	})
}

// fillRentalDraft переносит поля HTML формы в черновик выдачи
func fillRentalDraft(draft *domain.Rental, r *http.Request) {
	draft.VehicleID = r.PostFormValue("vehiculoId")
	draft.ClientID = r.PostFormValue("clienteId")
	draft.DeliveringOfficial = r.PostFormValue("funcionarioEntrega")
	draft.DeliveringOfficialDNI = r.PostFormValue("dniFuncionarioEntrega")
	draft.ReceivingOfficial = r.PostFormValue("funcionarioRecibe")
	draft.ReceivingOfficialDNI = r.PostFormValue("dniFuncionarioRecibe")
	draft.DeliveryDate = r.PostFormValue("fechaEntrega")
	draft.DeliveryPlace = r.PostFormValue("lugarEntrega")
	draft.DeliveryOdometer, _ = strconv.Atoi(r.PostFormValue("kilometrajeEntrega"))
	draft.FuelLevel = domain.FuelLevel(r.PostFormValue("nivelCombustible"))
	draft.Observations = r.PostFormValue("observaciones")

	fillInventory(&draft.Inventory, r)
}

// fillInventory читает флаги чек-листа; в HTML форме каждый флаг -
// checkbox с именем wire-поля
func fillInventory(inv *domain.Inventory, r *http.Request) {
	checked := func(name string) bool { return r.PostFormValue(name) != "" }

	inv.Headlights = checked("lucesPrincipales")
	inv.BrakeLights = checked("lucesStop")
	inv.ReverseLights = checked("lucesRetroceso")
	inv.TurnSignals = checked("lucesGiro")
	inv.HazardLights = checked("balizasLuminosas")
	inv.InteriorLights = checked("lucesInteriores")
	inv.InteriorMirror = checked("espejoInterior")
	inv.SideMirrors = checked("espejosLaterales")
	inv.Windshield = checked("parabrisas")
	inv.RearWindow = checked("luneta")
	inv.SideWindows = checked("vidriosLaterales")
	inv.WindowCranks = checked("levantaVidrios")
	inv.Upholstery = checked("tapizados")
	inv.FloorMats = checked("alfombras")
	inv.Radio = checked("radio")
	inv.Speakers = checked("parlantes")
	inv.Antenna = checked("antena")
	inv.Lighter = checked("encendedor")
	inv.Ashtray = checked("cenicero")
	inv.DashboardClock = checked("relojTablero")
	inv.InnerHandles = checked("manijasInternas")
	inv.SeatBelts = checked("cinturones")
	inv.Horn = checked("bocina")
	inv.FireExtinguisher = checked("matafuego")
	inv.WarningTriangles = checked("balizas")
	inv.FirstAidKit = checked("botiquin")
	inv.SpareWheel = checked("ruedaAuxilio")
	inv.Jack = checked("crique")
	inv.WheelWrench = checked("llaveRueda")
	inv.ToolKit = checked("herramientas")
	inv.FuelCap = checked("tapaCombustible")
	inv.RadiatorCap = checked("tapaRadiador")
	inv.OilDipstick = checked("varillaAceite")
	inv.GreenCard = checked("tarjetaVerde")
	inv.OwnersManual = checked("manualUso")
	inv.InsuranceCard = checked("seguroVehiculo")
}
