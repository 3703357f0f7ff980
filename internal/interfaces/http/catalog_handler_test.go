package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber completa (middleware + router) sobre un
// repositorio en memoria, ejercitada con app.Test.
// ──────────────────────────────────────────────────────────────────────────────

type memRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.CatalogItem
}

func newMemRepo() *memRepo { return &memRepo{items: make(map[int64]entity.CatalogItem)} }

func (r *memRepo) Insert(_ context.Context, item *entity.CatalogItem) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *item
	stored.ID = r.nextID
	r.items[stored.ID] = stored
	return stored.ID, nil
}

func (r *memRepo) Update(_ context.Context, item *entity.CatalogItem) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[item.ID]
	if !ok {
		return 0, nil
	}
	updated := *item
	updated.CreatedAt = existing.CreatedAt
	r.items[item.ID] = updated
	return 1, nil
}

func (r *memRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*entity.CatalogItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memRepo) List(_ context.Context, category *string, offset, limit int) ([]*entity.CatalogItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []entity.CatalogItem
	for _, it := range r.items {
		if category == nil || it.Category == *category {
			all = append(all, it)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	out := make([]*entity.CatalogItem, 0, len(all))
	for i := range all {
		it := all[i]
		out = append(out, &it)
	}
	return out, nil
}

func (r *memRepo) Count(_ context.Context, category *string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, it := range r.items {
		if category == nil || it.Category == *category {
			n++
		}
	}
	return n, nil
}

func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(newMemRepo()),
		Log:       logger.New(logger.Config{Env: "development", Level: "error"}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createItem(t *testing.T, app *fiber.App, in dto.CatalogRequest) int64 {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/catalog", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.CreatedResponse](t, resp).ID
}

func pizzaRequest() dto.CatalogRequest {
	return dto.CatalogRequest{
		Name:        "Margherita",
		Description: "Tomate y mozzarella",
		Image:       "/img/margherita.png",
		Price:       8.5,
		Currency:    "EUR",
		Category:    "pizza",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /catalog y GET /catalog/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearYObtener(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, pizzaRequest())

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/catalog/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CatalogItemResponse](t, resp)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Margherita", got.Name)
	assert.Equal(t, "pizza", got.Category)
	assert.InDelta(t, 8.5, got.Price, 1e-9)
}

func TestCrear_PrecioNegativo400(t *testing.T) {
	app := buildTestApp()
	in := pizzaRequest()
	in.Price = -1.0
	resp := doJSON(t, app, http.MethodPost, "/catalog", in)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCrear_NombreVacio400(t *testing.T) {
	app := buildTestApp()
	in := pizzaRequest()
	in.Name = ""
	resp := doJSON(t, app, http.MethodPost, "/catalog", in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestObtener_NoExiste404(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/catalog/9999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestObtener_IDNoEntero400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/catalog/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /catalog/:id y DELETE /catalog/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizar_ReemplazoCompleto(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, pizzaRequest())

	upd := dto.CatalogRequest{Name: "Calzone", Price: 10.0, Currency: "EUR", Category: "pizza"}
	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/catalog/%d", id), upd)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/catalog/%d", id), nil)
	got := decode[dto.CatalogItemResponse](t, resp)
	assert.Equal(t, "Calzone", got.Name)
	assert.Empty(t, got.Description, "PUT reemplaza todo: los campos omitidos quedan vacíos")
	assert.Empty(t, got.Image)
	assert.InDelta(t, 10.0, got.Price, 1e-9)
}

func TestActualizar_NoExiste404(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPut, "/catalog/9999", pizzaRequest())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEliminar(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, pizzaRequest())

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/catalog/%d", id), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/catalog/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "el segundo delete debe reportar 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /catalog/all
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_DefaultsYEco(t *testing.T) {
	app := buildTestApp()
	for i := 0; i < 3; i++ {
		createItem(t, app, pizzaRequest())
	}

	resp := doJSON(t, app, http.MethodGet, "/catalog/all", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.CatalogsResponse](t, resp)
	assert.EqualValues(t, 3, out.Total)
	assert.Len(t, out.CatalogItems, 3)
	assert.Equal(t, 0, out.Offset, "offset por defecto 0")
	assert.Equal(t, 20, out.Limit, "limit por defecto 20")
}

func TestListar_FiltroPorCategoria(t *testing.T) {
	app := buildTestApp()
	createItem(t, app, pizzaRequest())
	postre := pizzaRequest()
	postre.Name = "Tiramisú"
	postre.Category = "postre"
	createItem(t, app, postre)

	resp := doJSON(t, app, http.MethodGet, "/catalog/all?category=postre", nil)
	out := decode[dto.CatalogsResponse](t, resp)
	assert.EqualValues(t, 1, out.Total)
	require.Len(t, out.CatalogItems, 1)
	assert.Equal(t, "Tiramisú", out.CatalogItems[0].Name)
}

func TestListar_OffsetYLimit(t *testing.T) {
	app := buildTestApp()
	for i := 0; i < 5; i++ {
		createItem(t, app, pizzaRequest())
	}

	resp := doJSON(t, app, http.MethodGet, "/catalog/all?offset=3&limit=10", nil)
	out := decode[dto.CatalogsResponse](t, resp)
	assert.EqualValues(t, 5, out.Total)
	assert.Len(t, out.CatalogItems, 2)
	assert.Equal(t, 3, out.Offset)
	assert.Equal(t, 10, out.Limit)
}

func TestListar_LimitCeroSoloTotal(t *testing.T) {
	app := buildTestApp()
	createItem(t, app, pizzaRequest())

	resp := doJSON(t, app, http.MethodGet, "/catalog/all?limit=0", nil)
	out := decode[dto.CatalogsResponse](t, resp)
	assert.EqualValues(t, 1, out.Total)
	assert.Empty(t, out.CatalogItems)
	assert.Equal(t, 0, out.Limit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestID_SeGeneraYSeRespeta(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/catalog/all", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"), "debe generarse un id si el cliente no envía uno")

	req := httptest.NewRequest(http.MethodGet, "/catalog/all", nil)
	req.Header.Set("X-Request-Id", "mi-id-propio")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "mi-id-propio", resp.Header.Get("X-Request-Id"))
}
