package product

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav-foods/spice-store-backend/internal/middlewares"
)

func setupRouter() (*chi.Mux, *mockStore) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := newMockStore()
	handler := NewHandler(
		NewService(store),
		middlewares.NewMiddleware(log),
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	return router, store
}

func doJSON(t *testing.T, router *chi.Mux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestCreateProductHandler(t *testing.T) {
	router, _ := setupRouter()

	t.Run("creates and returns the document", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/products", map[string]any{
			"name":        "Turmeric",
			"price":       5,
			"description": "x",
			"imageUrl":    "http://i",
			"category":    "spices",
			"weight":      "100g",
			"stock":       10,
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var created Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "spices", created.Category)
		assert.Equal(t, 10, created.Stock)
	})

	t.Run("missing required field is a 400 envelope", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/products", map[string]any{
			"name":  "Turmeric",
			"price": 5,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "ValidationError", envelope["error"])
		assert.Equal(t, "Missing required product fields", envelope["message"])
		assert.Equal(t, float64(http.StatusBadRequest), envelope["status"])
	})

	t.Run("missing stock is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/products", map[string]any{
			"name":        "Turmeric",
			"price":       5,
			"description": "x",
			"imageUrl":    "http://i",
			"category":    "spices",
			"weight":      "100g",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetProductsByCategoryHandler(t *testing.T) {
	router, store := setupRouter()
	store.seed(&Product{ID: "p1", Name: "Garam Masala", Category: "masalas"})

	t.Run("uppercase category matches", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/products/category/MASALAS", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var products []*Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "masalas", products[0].Category)
	})

	t.Run("unknown category is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/products/category/herbs", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "ValidationError", envelope["error"])
		assert.Contains(t, envelope["message"], "herbs")
	})
}

func TestGetProductHandler(t *testing.T) {
	router, store := setupRouter()
	store.seed(&Product{ID: "p1", Name: "Chilli Powder", Category: "powders"})

	t.Run("found", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/products/p1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found envelope carries the id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/products/missing", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "NotFoundError", envelope["error"])
		assert.Contains(t, envelope["message"], "missing")
	})
}

func TestUpdateProductHandler(t *testing.T) {
	router, store := setupRouter()
	store.seed(&Product{
		ID:          "p1",
		Name:        "Cumin",
		Price:       4,
		Description: "whole seeds",
		ImageURL:    "http://i",
		Category:    "spices",
		Weight:      "50g",
	})

	t.Run("updates and returns the document", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/products/p1", map[string]any{
			"price": 6.5,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var updated Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, 6.5, updated.Price)
		assert.Equal(t, "Cumin", updated.Name)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/products/missing", map[string]any{
			"price": 1,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	router, store := setupRouter()
	store.seed(&Product{ID: "p1", Name: "Cumin", Category: "spices"})

	t.Run("delete is 204 with empty body", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/products/p1", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("second delete is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/products/p1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
