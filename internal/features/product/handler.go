package product

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/pranav-foods/spice-store-backend/internal/handlerutils"
	"github.com/pranav-foods/spice-store-backend/internal/servererrors"
	"github.com/pranav-foods/spice-store-backend/internal/validate"
)

const requestTimeout = 30 * time.Second

type servicer interface {
	getAllProducts(ctx context.Context) ([]*Product, error)
	getProduct(ctx context.Context, productID string) (*Product, error)
	getProductsByCategory(ctx context.Context, category string) ([]*Product, error)
	createProduct(ctx context.Context, newProduct *CreateProductRequest) (*Product, error)
	updateProduct(ctx context.Context, productID string, fields UpdateProductFields) (*Product, error)
	deleteProduct(ctx context.Context, productID string) error
}

type middleware interface {
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(productService servicer, middleware middleware) *handler {
	return &handler{
		service:    productService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/products",
		h.middleware.ErrorHandler(h.getAllProductsHandler),
	)

	router.Get(
		"/products/category/{category}",
		h.middleware.ErrorHandler(h.getProductsByCategoryHandler),
	)

	router.Get(
		"/products/{productID}",
		h.middleware.ErrorHandler(h.getProductHandler),
	)

	// admin-only by convention; no auth layer exists on purpose
	router.Post(
		"/products",
		h.middleware.ErrorHandler(h.createProductHandler),
	)

	router.Put(
		"/products/{productID}",
		h.middleware.ErrorHandler(h.updateProductHandler),
	)

	router.Delete(
		"/products/{productID}",
		h.middleware.ErrorHandler(h.deleteProductHandler),
	)
}

func (h *handler) getAllProductsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := h.service.getAllProducts(ctx)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, products)
}

func (h *handler) getProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	productID := chi.URLParam(r, "productID")

	product, err := h.service.getProduct(ctx, productID)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) getProductsByCategoryHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	category := chi.URLParam(r, "category")

	products, err := h.service.getProductsByCategory(ctx, category)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, products)
}

func (h *handler) createProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	defer r.Body.Close()

	var payload *CreateProductRequest
	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.NewValidation("invalid request payload")
	}

	if err := validate.StructFields(payload); err != nil {
		return servererrors.NewValidation("Missing required product fields")
	}

	product, err := h.service.createProduct(ctx, payload)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusCreated, product)
}

func (h *handler) updateProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	defer r.Body.Close()

	productID := chi.URLParam(r, "productID")

	var fields UpdateProductFields
	if err := handlerutils.ParseJSON(r, &fields); err != nil {
		return servererrors.NewValidation("invalid request payload")
	}

	product, err := h.service.updateProduct(ctx, productID, fields)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) deleteProductHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	productID := chi.URLParam(r, "productID")

	if err := h.service.deleteProduct(ctx, productID); err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusNoContent, nil)
}
