package web

import (
	"net/http"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/form"
	"github.com/federicojaime/renting-app-sub000/internal/listview"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/service"
	"github.com/go-chi/chi/v5"
)

// ClientHandler обслуживает экраны клиентов
type ClientHandler struct {
	clients  *service.ClientService
	rentals  *service.RentalService
	renderer *Renderer
	logger   logger.Logger
}

// NewClientHandler создает handler клиентов
func NewClientHandler(clients *service.ClientService, rentals *service.RentalService, renderer *Renderer, log logger.Logger) *ClientHandler {
	return &ClientHandler{
		clients:  clients,
		rentals:  rentals,
		renderer: renderer,
		logger:   log,
	}
}

// List показывает таблицу клиентов
// GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)

	items, err := h.clients.List(r.Context())
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		flash = &Flash{Kind: "error", Message: fetchFlash(err)}
	}

	ctrl := listview.New(listview.Clients())
	ctrl.Load(items)

	params := parseListParams(r)
	tipo := r.URL.Query().Get("tipo")
	if tipo != "" {
		ctrl.SetFilter("tipo", listview.ClientTypeIs(domain.ClientType(tipo)))
	}
	apply(ctrl, params)

	h.renderer.Render(w, http.StatusOK, "clients.html", map[string]interface{}{
		"Title":      "Clientes",
		"Flash":      flash,
		"Items":      ctrl.Visible(),
		"Total":      ctrl.Total(),
		"Page":       ctrl.Page(),
		"TotalPages": ctrl.TotalPages(),
		"Query":      params.Q,
		"Tipo":       tipo,
		"Sort":       params.Sort,
		"Desc":       params.Desc,
	})
}

// Detail показывает карточку клиента с историей его выдач
// GET /clients/{id}
func (h *ClientHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	client, err := h.clients.Get(r.Context(), id)
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		h.renderer.NotFound(w, nil)
		return
	}

	history, err := h.rentals.ByClient(r.Context(), id)
	if err != nil {
		h.logger.Warn("Client rental history fetch failed", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
	}

	h.renderer.Render(w, http.StatusOK, "client_detail.html", map[string]interface{}{
		"Title":   client.DisplayName(),
		"Flash":   popFlash(w, r),
		"Client":  client,
		"Rentals": history,
	})
}

// New показывает пустую форму создания
// GET /clients/new
func (h *ClientHandler) New(w http.ResponseWriter, r *http.Request) {
	f := form.NewClientForm(h.clients)
	h.renderForm(w, http.StatusOK, f, form.Errors{}, false)
}

// Create обрабатывает отправку формы создания
// POST /clients/new
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	f := form.NewClientForm(h.clients)
	h.submit(w, r, f, "Cliente creado", false)
}

// Edit показывает форму, заполненную существующей записью
// GET /clients/{id}/edit
func (h *ClientHandler) Edit(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		h.renderer.NotFound(w, nil)
		return
	}

	f := form.EditClientForm(h.clients, *client)
	h.renderForm(w, http.StatusOK, f, form.Errors{}, true)
}

// Update обрабатывает отправку формы редактирования.
// Тип клиента в форме заблокирован, черновик сохраняет исходный тип.
// POST /clients/{id}/edit
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if sessionExpired(w, r, err) {
			return
		}
		h.renderer.NotFound(w, nil)
		return
	}

	f := form.EditClientForm(h.clients, *client)
	h.submit(w, r, f, "Cliente actualizado", true)
}

// Delete удаляет клиента
// POST /clients/{id}/delete
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	envelope, err := h.clients.Remove(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err != nil:
		if sessionExpired(w, r, err) {
			return
		}
		setFlash(w, "error", fetchFlash(err))
	case !envelope.Ok:
		setFlash(w, "error", envelope.Msg)
	default:
		setFlash(w, "success", "Cliente eliminado")
	}

	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *ClientHandler) submit(w http.ResponseWriter, r *http.Request, f *form.ClientForm, successMsg string, edit bool) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, http.StatusBadRequest, f, form.Errors{form.GlobalField: "formulario inválido"}, edit)
		return
	}
	fillClientDraft(&f.Draft, r, edit)

	errs, err := f.Submit(r.Context())
	if err != nil && sessionExpired(w, r, err) {
		return
	}
	if errs.Any() {
		h.renderForm(w, http.StatusUnprocessableEntity, f, errs, edit)
		return
	}

	setFlash(w, "success", successMsg)
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *ClientHandler) renderForm(w http.ResponseWriter, status int, f *form.ClientForm, errs form.Errors, edit bool) {
	h.renderer.Render(w, status, "client_form.html", map[string]interface{}{
		"Title":  "Cliente",
		"Draft":  f.Draft,
		"Errors": errs,
		"Edit":   edit,
	})
}

// fillClientDraft переносит поля HTML формы в черновик.
// При редактировании тип не перечитывается из формы: он неизменяем.
func fillClientDraft(draft *domain.Client, r *http.Request, edit bool) {
	if !edit {
		draft.Type = domain.ClientType(r.PostFormValue("tipoCliente"))
	}
	draft.Name = r.PostFormValue("nombre")
	draft.CompanyName = r.PostFormValue("razonSocial")
	draft.DNICuit = r.PostFormValue("dniCuit")
	draft.Phone = r.PostFormValue("telefono")
	draft.Email = r.PostFormValue("email")
}
