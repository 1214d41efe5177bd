package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/federicojaime/renting-app-sub000/internal/domain"
	"github.com/federicojaime/renting-app-sub000/internal/listview"
)

// listParams - параметры табличного экрана из query string
type listParams struct {
	Q    string
	Page int
	Size int
	Sort string
	Desc bool
}

// parseListParams читает q/page/size/sort/dir из запроса
func parseListParams(r *http.Request) listParams {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(q.Get("size"))

	return listParams{
		Q:    q.Get("q"),
		Page: page,
		Size: size,
		Sort: q.Get("sort"),
		Desc: q.Get("dir") == "desc",
	}
}

// apply переносит параметры запроса в контроллер таблицы.
// Порядок важен: размер страницы и поиск сбрасывают страницу,
// поэтому запрошенный номер ставится последним.
func apply[T any](ctrl *listview.Controller[T], p listParams) {
	if p.Size > 0 {
		ctrl.SetPageSize(p.Size)
	}
	ctrl.SetSearch(p.Q)
	ctrl.SetSort(p.Sort, p.Desc)
	ctrl.SetPage(p.Page)
}

// sessionExpired проверяет, не истекла ли сессия по результату вызова
// бэкенда; при 401 шлюз уже очистил сессию, остается увести
// пользователя на логин
func sessionExpired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, domain.ErrSessionExpired) {
		return false
	}
	setFlash(w, "error", "Sesión expirada, ingresá nuevamente")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// fetchFlash - текст уведомления для упавшей загрузки списка
func fetchFlash(err error) string {
	if errors.Is(err, domain.ErrNoResponse) {
		return "No hay conexión con el servidor"
	}
	return err.Error()
}
