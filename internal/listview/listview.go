package listview

import (
	"sort"
	"strings"
)

// DefaultPageSize - размер страницы таблиц по умолчанию
const DefaultPageSize = 10

// Predicate - именованный фильтр коллекции; не установленный
// фильтр пропускает все
type Predicate[T any] func(T) bool

// Compare - компаратор сортировки: отрицательное значение
// означает a < b
type Compare[T any] func(a, b T) int

// Config - конфигурация контроллера под конкретную сущность
type Config[T any] struct {
	// SearchText возвращает значения полей, по которым идет
	// текстовый поиск
	SearchText func(T) []string
	// Sorts - доступные ключи сортировки
	Sorts map[string]Compare[T]
	// PageSize - размер страницы; 0 означает DefaultPageSize
	PageSize int
}

// Controller управляет одной табличной выборкой: полная коллекция
// в памяти плюс поиск, фильтры, сортировка и пагинация поверх нее.
//
// Visible() - чистая функция текущего состояния: одинаковые коллекция,
// фильтры и страница всегда дают одинаковый результат.
type Controller[T any] struct {
	cfg     Config[T]
	items   []T
	term    string
	filters map[string]Predicate[T]
	sortKey string
	desc    bool
	page    int
}

// New создает контроллер с пустой коллекцией
func New[T any](cfg Config[T]) *Controller[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Controller[T]{
		cfg:     cfg,
		filters: make(map[string]Predicate[T]),
		page:    1,
	}
}

// Load заменяет коллекцию. Страница не сбрасывается: после
// перезагрузки данных пользователь остается там же, а выход за
// последнюю страницу гасится подрезкой в Visible.
func (c *Controller[T]) Load(items []T) {
	c.items = items
}

// SetSearch устанавливает строку поиска и возвращает на первую страницу
func (c *Controller[T]) SetSearch(term string) {
	if term == c.term {
		return
	}
	c.term = term
	c.page = 1
}

// SetFilter включает именованный фильтр и возвращает на первую страницу
func (c *Controller[T]) SetFilter(name string, pred Predicate[T]) {
	c.filters[name] = pred
	c.page = 1
}

// ClearFilter снимает именованный фильтр и возвращает на первую страницу
func (c *Controller[T]) ClearFilter(name string) {
	if _, ok := c.filters[name]; !ok {
		return
	}
	delete(c.filters, name)
	c.page = 1
}

// SetSort устанавливает ключ и направление сортировки.
// Неизвестный ключ оставляет порядок коллекции.
func (c *Controller[T]) SetSort(key string, descending bool) {
	c.sortKey = key
	c.desc = descending
}

// SetPage запрашивает страницу; итоговый номер подрезается
// в границы в Visible
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.page = page
}

// SetPageSize меняет размер страницы и возвращает на первую страницу
func (c *Controller[T]) SetPageSize(size int) {
	if size <= 0 || size == c.cfg.PageSize {
		return
	}
	c.cfg.PageSize = size
	c.page = 1
}

// PageSize возвращает текущий размер страницы
func (c *Controller[T]) PageSize() int {
	return c.cfg.PageSize
}

// Search возвращает текущую строку поиска
func (c *Controller[T]) Search() string {
	return c.term
}

// SortKey возвращает текущий ключ сортировки и направление
func (c *Controller[T]) SortKey() (string, bool) {
	return c.sortKey, c.desc
}

// matched применяет поиск и фильтры: search(filter(...)) без
// сортировки и пагинации
func (c *Controller[T]) matched() []T {
	out := make([]T, 0, len(c.items))

	term := strings.ToLower(strings.TrimSpace(c.term))
	for _, item := range c.items {
		if term != "" && !c.matchesTerm(item, term) {
			continue
		}
		if !c.matchesFilters(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// matchesTerm - регистронезависимый поиск подстроки по полям сущности
func (c *Controller[T]) matchesTerm(item T, term string) bool {
	if c.cfg.SearchText == nil {
		return true
	}
	for _, field := range c.cfg.SearchText(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) matchesFilters(item T) bool {
	for _, pred := range c.filters {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Total возвращает число записей после поиска и фильтров
func (c *Controller[T]) Total() int {
	return len(c.matched())
}

// TotalPages возвращает число страниц текущей выборки, минимум 1
func (c *Controller[T]) TotalPages() int {
	return totalPages(c.Total(), c.cfg.PageSize)
}

// Page возвращает номер страницы, которую реально покажет Visible
func (c *Controller[T]) Page() int {
	return clampPage(c.page, c.Total(), c.cfg.PageSize)
}

// Visible возвращает отображаемую страницу:
// paginate(sort(filter(search(коллекция)))).
// Пустая коллекция или фильтр без совпадений дают пустую страницу.
func (c *Controller[T]) Visible() []T {
	out := c.matched()

	if cmp, ok := c.cfg.Sorts[c.sortKey]; ok {
		// Стабильная сортировка: равные элементы сохраняют
		// исходный порядок коллекции
		sort.SliceStable(out, func(i, j int) bool {
			if c.desc {
				return cmp(out[i], out[j]) > 0
			}
			return cmp(out[i], out[j]) < 0
		})
	}

	return Paginate(out, c.page, c.cfg.PageSize)
}

// Paginate вырезает страницу page (1-индексация) размера size.
// Номер страницы подрезается в [1, totalPages]; конкатенация всех
// страниц по порядку восстанавливает вход без пропусков и дублей.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return nil
	}
	page = clampPage(page, len(items), size)

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func clampPage(page, total, size int) int {
	last := totalPages(total, size)
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

func totalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}
