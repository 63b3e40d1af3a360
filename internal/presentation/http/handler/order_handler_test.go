package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/pkg/pagination"
	"github.com/hallmarkbd/hallmark-api/pkg/upload"
	"github.com/hallmarkbd/hallmark-api/pkg/voucher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListPage(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	all, _ := f.List(ctx)
	return all, int64(len(all)), nil
}

func (f *fakeOrderRepo) ListByCreatedRange(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	all, _ := f.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) TotalRevenueCents(ctx context.Context) (int64, error) {
	var cents int64
	for _, o := range f.orders {
		cents += o.TotalAmount
	}
	return cents, nil
}

func newOrderRouter(t *testing.T, repo *fakeOrderRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	saver, err := upload.NewSaver(t.TempDir(), 5<<20)
	require.NoError(t, err)

	h := NewOrderHandler(service.NewOrderService(repo), saver)
	router := gin.New()
	router.GET("/orders", h.List)
	router.POST("/orders", h.Create)
	router.GET("/orders/:id", h.Get)
	router.DELETE("/orders/:id", h.Delete)
	return router
}

func orderForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestOrderCreate(t *testing.T) {
	repo := &fakeOrderRepo{}
	router := newOrderRouter(t, repo)

	body, contentType := orderForm(t, map[string]string{
		"name":       "Rahim Jewellers",
		"customerID": "12",
		"contact":    "01712345678",
		"type":       "hallmark",
		"items":      `[{"item":"Chain","quantity":"2","rate":"500","weight":"11.6","weightUnite":"gm"}]`,
		// Client-sent totals are ignored by the server.
		"totalAmount": "1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got struct {
		Voucher     string  `json:"voucher"`
		TotalAmount float64 `json:"totalAmount"`
		Items       []struct {
			Amount float64 `json:"amount"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, voucher.IsValid(got.Voucher))
	assert.Equal(t, 1000.00, got.TotalAmount, "total is recomputed from the line items")
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1000.00, got.Items[0].Amount)
	require.Len(t, repo.orders, 1)
}

func TestOrderCreate_NoItems(t *testing.T) {
	router := newOrderRouter(t, &fakeOrderRepo{})

	body, contentType := orderForm(t, map[string]string{
		"name":  "Rahim Jewellers",
		"type":  "hallmark",
		"items": `[{"item":"","quantity":"","rate":""}]`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderCreate_NegativeQuantity(t *testing.T) {
	repo := &fakeOrderRepo{}
	router := newOrderRouter(t, repo)

	// A negative quantity coerces to 0, leaving the row incomplete; a
	// draft with no other row must be rejected rather than persisted
	// with a reduced total.
	body, contentType := orderForm(t, map[string]string{
		"name":  "Rahim Jewellers",
		"type":  "hallmark",
		"items": `[{"item":"Chain","quantity":-1,"rate":"100"}]`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.orders)
}

func TestOrderCreate_BadItemsJSON(t *testing.T) {
	router := newOrderRouter(t, &fakeOrderRepo{})

	body, contentType := orderForm(t, map[string]string{
		"name":  "Rahim Jewellers",
		"type":  "hallmark",
		"items": `{{not json`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid items payload")
}

func TestOrderList_InvalidDate(t *testing.T) {
	router := newOrderRouter(t, &fakeOrderRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders?date=15-03-2025", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or missing date parameter")
}

func TestOrderList_ByDate(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{
		{ID: uuid.New(), Name: "In range", CreatedAt: time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local)},
		{ID: uuid.New(), Name: "Day after", CreatedAt: time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local)},
	}}
	router := newOrderRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders?date=2025-03-15", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "In range")
	assert.NotContains(t, w.Body.String(), "Day after")
}

func TestOrderGet_BadID(t *testing.T) {
	router := newOrderRouter(t, &fakeOrderRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderDelete_NotFound(t *testing.T) {
	router := newOrderRouter(t, &fakeOrderRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/orders/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
