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
)

// VehicleHandler обслуживает экраны автомобилей
type VehicleHandler struct {
	vehicles *service.VehicleService
	rentals  *service.RentalService
	renderer *Renderer
	logger   logger.Logger
}

// NewVehicleHandler создает handler автомобилей
func NewVehicleHandler(vehicles *service.VehicleService, rentals *service.RentalService, renderer *Renderer, log logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicles: vehicles,
		rentals:  rentals,
		renderer: renderer,
		logger:   log,
	}
}

// List показывает таблицу автомобилей с поиском, фильтром по статусу,
// сортировкой и пагинацией
// GET /vehicles
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)

	items, err := h.vehicles.List(r.Context())
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		// Коллекция остается пустой, уведомление об ошибке связи
		flash = &Flash{Kind: "error", Message: fetchFlash(err)}
	}

	ctrl := listview.New(listview.Vehicles())
	ctrl.Load(items)

	params := parseListParams(r)
	estado := r.URL.Query().Get("estado")
	if estado != "" {
		ctrl.SetFilter("estado", listview.VehicleStatusIs(domain.VehicleStatus(estado)))
	}
	apply(ctrl, params)

	h.renderer.Render(w, http.StatusOK, "vehicles.html", map[string]interface{}{
		"Title":      "Vehículos",
		"Flash":      flash,
		"Items":      ctrl.Visible(),
		"Total":      ctrl.Total(),
		"Page":       ctrl.Page(),
		"TotalPages": ctrl.TotalPages(),
		"Query":      params.Q,
		"Estado":     estado,
		"Sort":       params.Sort,
		"Desc":       params.Desc,
		"Statuses":   domain.VehicleStatuses,
	})
}

// Detail показывает карточку автомобиля с историей его выдач
// GET /vehicles/{id}
func (h *VehicleHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	vehicle, err := h.vehicles.Get(r.Context(), id)
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		// Провал основного запроса детального экрана - полноэкранный 404
		h.renderer.NotFound(w, nil)
		return
	}

	// История выдач вторична: при ошибке карточка все равно рендерится
	history, err := h.rentals.ByVehicle(r.Context(), id)
	if err != nil {
		h.logger.Warn("Vehicle rental history fetch failed", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
	}

	h.renderer.Render(w, http.StatusOK, "vehicle_detail.html", map[string]interface{}{
		"Title":   "Vehículo " + vehicle.Plate,
		"Flash":   popFlash(w, r),
		"Vehicle": vehicle,
		"Rentals": history,
	})
}

// New показывает пустую форму создания
// GET /vehicles/new
func (h *VehicleHandler) New(w http.ResponseWriter, r *http.Request) {
	f := form.NewVehicleForm(h.vehicles)
	h.renderForm(w, http.StatusOK, f, form.Errors{})
}

// Create обрабатывает отправку формы создания
// POST /vehicles/new
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	f := form.NewVehicleForm(h.vehicles)
	h.submit(w, r, f, "Vehículo creado")
}

// Edit показывает форму, заполненную существующей записью
// GET /vehicles/{id}/edit
func (h *VehicleHandler) Edit(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		h.renderer.NotFound(w, nil)
		return
	}

	f := form.EditVehicleForm(h.vehicles, *vehicle)
	h.renderForm(w, http.StatusOK, f, form.Errors{})
}

// Update обрабатывает отправку формы редактирования
// POST /vehicles/{id}/edit
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	f := form.EditVehicleForm(h.vehicles, domain.Vehicle{ID: chi.URLParam(r, "id")})
	h.submit(w, r, f, "Vehículo actualizado")
}

// Delete удаляет автомобиль; подтверждение происходит на клиенте
// POST /vehicles/{id}/delete
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	envelope, err := h.vehicles.Remove(r.Context(), id)
	switch {
	case err != nil:
		if sessionExpired(w, r, err) {
			return
		}
		setFlash(w, "error", fetchFlash(err))
	case !envelope.Ok:
		setFlash(w, "error", envelope.Msg)
	default:
		setFlash(w, "success", "Vehículo eliminado")
	}

	http.Redirect(w, r, "/vehicles", http.StatusSeeOther)
}

// submit заполняет черновик из формы, отправляет его и решает,
// куда вести пользователя. Успех закрывает форму и возвращает
// к таблице, которая перечитает коллекцию с бэкенда.
func (h *VehicleHandler) submit(w http.ResponseWriter, r *http.Request, f *form.VehicleForm, successMsg string) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, http.StatusBadRequest, f, form.Errors{form.GlobalField: "formulario inválido"})
		return
	}
	fillVehicleDraft(&f.Draft, r)

	errs, err := f.Submit(r.Context())
	if err != nil && sessionExpired(w, r, err) {
		return
	}
	if errs.Any() {
		h.renderForm(w, http.StatusUnprocessableEntity, f, errs)
		return
	}

	setFlash(w, "success", successMsg)
	http.Redirect(w, r, "/vehicles", http.StatusSeeOther)
}

func (h *VehicleHandler) renderForm(w http.ResponseWriter, status int, f *form.VehicleForm, errs form.Errors) {
	h.renderer.Render(w, status, "vehicle_form.html", map[string]interface{}{
		"Title":    "Vehículo",
		"Draft":    f.Draft,
		"Errors":   errs,
		"Statuses": domain.VehicleStatuses,
	})
}

// fillVehicleDraft переносит поля HTML формы в черновик
func fillVehicleDraft(draft *domain.Vehicle, r *http.Request) {
	draft.InternalNumber = r.PostFormValue("nroInterno")
	draft.Plate = r.PostFormValue("patente")
	draft.Brand = r.PostFormValue("marca")
	draft.Model = r.PostFormValue("modelo")
	draft.Designation = r.PostFormValue("designacion")
	draft.AcquisitionDate = r.PostFormValue("fechaAdquisicion")
	draft.EngineNumber = r.PostFormValue("nroMotor")
	draft.ChassisNumber = r.PostFormValue("nroChasis")
	draft.TitleReference = r.PostFormValue("titulo")
	draft.Status = domain.VehicleStatus(r.PostFormValue("estado"))
	draft.Responsible = r.PostFormValue("responsable")
	draft.Ministry = r.PostFormValue("ministerio")
	draft.InsuranceCompany = r.PostFormValue("compania")
	draft.PolicyNumber = r.PostFormValue("nroPoliza")
	draft.InsuranceExpires = r.PostFormValue("vencimientoPoliza")
	if precio := r.PostFormValue("precio"); precio != "" {
		draft.Price, _ = strconv.ParseFloat(precio, 64)
	}
}
