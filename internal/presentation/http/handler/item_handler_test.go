package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemRepo struct {
	items []entity.ItemName
}

func (f *fakeItemRepo) ListByType(ctx context.Context, serviceType enum.ServiceType) ([]entity.ItemName, error) {
	var out []entity.ItemName
	for _, it := range f.items {
		if it.Type == serviceType {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeItemRepo) GetByNormalized(ctx context.Context, serviceType enum.ServiceType, normalized string) (*entity.ItemName, error) {
	for i := range f.items {
		if f.items[i].Type == serviceType && f.items[i].Normalized == normalized {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.ItemName) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeItemRepo) CreateIfAbsent(ctx context.Context, item *entity.ItemName) error {
	existing, _ := f.GetByNormalized(ctx, item.Type, item.Normalized)
	if existing != nil {
		return nil
	}
	return f.Create(ctx, item)
}

func newItemRouter(repo *fakeItemRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewItemHandler(service.NewItemService(repo))
	router := gin.New()
	router.GET("/items/:type", h.ListByType)
	router.POST("/items", h.Create)
	return router
}

func TestItemListByType(t *testing.T) {
	repo := &fakeItemRepo{items: []entity.ItemName{
		{Name: "Ring", Type: enum.ServiceTypeHallmark, Normalized: "ring"},
		{Name: "Chain", Type: enum.ServiceTypeHallmark, Normalized: "chain"},
		{Name: "Gold Test", Type: enum.ServiceTypeXray, Normalized: "gold test"},
	}}
	router := newItemRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/hallmark", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"Chain"`)
	assert.Contains(t, body, `"Ring"`)
	assert.NotContains(t, body, `"Gold Test"`)
	assert.Less(t, strings.Index(body, "Chain"), strings.Index(body, "Ring"), "entries come back alphabetically")
}

func TestItemListByType_InvalidType(t *testing.T) {
	router := newItemRouter(&fakeItemRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/laser", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid item type")
}

func TestItemCreate(t *testing.T) {
	router := newItemRouter(&fakeItemRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"Gold Ring","type":"hallmark"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Gold Ring"`)
}

func TestItemCreate_Duplicate(t *testing.T) {
	router := newItemRouter(&fakeItemRepo{items: []entity.ItemName{
		{Name: "Gold Ring", Type: enum.ServiceTypeHallmark, Normalized: "gold ring"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"  GOLD   ring ","type":"hallmark"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Item already exists")
}

func TestItemCreate_MissingFields(t *testing.T) {
	router := newItemRouter(&fakeItemRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"Chain"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
