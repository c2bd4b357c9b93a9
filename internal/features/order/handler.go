package order

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
	getAllOrders(ctx context.Context) ([]*Order, error)
	getOrder(ctx context.Context, orderID string) (*Order, error)
	createOrder(ctx context.Context, newOrder *CreateOrderRequest) (*Order, error)
	updateOrder(ctx context.Context, orderID string, fields UpdateOrderFields) (*Order, error)
	deleteOrder(ctx context.Context, orderID string) error
	sendConfirmation(req *SendConfirmationRequest) error
}

type middleware interface {
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(orderService servicer, middleware middleware) *handler {
	return &handler{
		service:    orderService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/orders",
		h.middleware.ErrorHandler(h.getAllOrdersHandler),
	)

	router.Post(
		"/orders",
		h.middleware.ErrorHandler(h.createOrderHandler),
	)

	router.Post(
		"/orders/send-confirmation",
		h.middleware.ErrorHandler(h.sendConfirmationHandler),
	)

	router.Get(
		"/orders/{orderID}",
		h.middleware.ErrorHandler(h.getOrderHandler),
	)

	router.Put(
		"/orders/{orderID}",
		h.middleware.ErrorHandler(h.updateOrderHandler),
	)

	router.Delete(
		"/orders/{orderID}",
		h.middleware.ErrorHandler(h.deleteOrderHandler),
	)
}

func (h *handler) getAllOrdersHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orders, err := h.service.getAllOrders(ctx)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, orders)
}

func (h *handler) getOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orderID := chi.URLParam(r, "orderID")

	order, err := h.service.getOrder(ctx, orderID)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, order)
}

func (h *handler) createOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	defer r.Body.Close()

	var payload *CreateOrderRequest
	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.NewValidation("invalid request payload")
	}

	if err := validate.StructFields(payload); err != nil {
		return servererrors.NewValidation("Missing required order fields")
	}

	order, err := h.service.createOrder(ctx, payload)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusCreated, order)
}

func (h *handler) updateOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	defer r.Body.Close()

	orderID := chi.URLParam(r, "orderID")

	var fields UpdateOrderFields
	if err := handlerutils.ParseJSON(r, &fields); err != nil {
		return servererrors.NewValidation("invalid request payload")
	}

	order, err := h.service.updateOrder(ctx, orderID, fields)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, order)
}

func (h *handler) deleteOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orderID := chi.URLParam(r, "orderID")

	if err := h.service.deleteOrder(ctx, orderID); err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *handler) sendConfirmationHandler(w http.ResponseWriter, r *http.Request) error {
	defer r.Body.Close()

	var payload *SendConfirmationRequest
	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.NewValidation("invalid request payload")
	}

	if err := validate.StructFields(payload); err != nil {
		return servererrors.NewValidation(
			"Missing required fields for email confirmation",
		)
	}

	if err := h.service.sendConfirmation(payload); err != nil {
		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		SendConfirmationResponse{
			Success: true,
			Message: "Order confirmation email sent successfully.",
		},
	)
}
