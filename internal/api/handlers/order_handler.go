package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"shop-backend/internal/models"
	"shop-backend/internal/orderid"
	"shop-backend/internal/repository"
)

const (
	ordersTable  = "Orders"
	ordersView   = "Grid view"
	orderIDField = "Order ID"
)

type OrderHandler struct {
	store repository.RecordStore
}

func NewOrderHandler(store repository.RecordStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// GetAll returns orders in whatever order the store's default view
// yields; nothing is re-sorted here.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context(), ordersTable, repository.ListOptions{View: ordersView})
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}

	orders := lo.Map(records, func(rec repository.Record, _ int) map[string]any {
		return models.OrderFromRecord(rec)
	})
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.Get(r.Context(), ordersTable, chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("Error fetching order: %v", err)
		writeMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, models.OrderFromRecord(rec))
}

// Create assigns the next sequential order id, stamps today's date and
// forces the status to Pending. The read-max-then-create sequence is
// not serialized: two concurrent creations can draw the same id.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	nextID, err := h.nextOrderID(r.Context())
	if err != nil {
		log.Printf("Error creating order: %v", err)
		if errors.Is(err, orderid.ErrMalformed) {
			// bad data in the store, not the caller's fault
			writeMessage(w, http.StatusInternalServerError, "Error creating order")
		} else {
			writeMessage(w, http.StatusBadRequest, "Error creating order")
		}
		return
	}

	orderDate := time.Now().UTC().Format(time.DateOnly)
	rec, err := h.store.Create(r.Context(), ordersTable, models.NewOrderFields(req, nextID, orderDate))
	if err != nil {
		log.Printf("Error creating order: %v", err)
		writeMessage(w, http.StatusBadRequest, "Error creating order")
		return
	}

	writeJSON(w, http.StatusCreated, models.OrderFromRecord(rec))
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	status, err := models.ToOrderStatus(req.Status)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid order status")
		return
	}

	rec, err := h.store.Update(r.Context(), ordersTable, chi.URLParam(r, "id"), map[string]any{
		"Order Status": string(status),
	})
	if err != nil {
		log.Printf("Error updating order status: %v", err)
		writeMessage(w, http.StatusBadRequest, "Error updating order status")
		return
	}

	writeJSON(w, http.StatusOK, models.OrderStatusProjection(rec))
}

// nextOrderID reads the highest existing order id and increments it.
func (h *OrderHandler) nextOrderID(ctx context.Context) (string, error) {
	records, err := h.store.List(ctx, ordersTable, repository.ListOptions{
		Fields:     []string{orderIDField},
		Sort:       []repository.Sort{{Field: orderIDField, Direction: "desc"}},
		MaxRecords: 1,
	})
	if err != nil {
		return "", err
	}

	lastID := ""
	if len(records) > 0 {
		id, ok := records[0].Fields[orderIDField].(string)
		if !ok || id == "" {
			return "", fmt.Errorf("record %s: %w", records[0].ID, orderid.ErrMalformed)
		}
		lastID = id
	}

	return orderid.Next(lastID)
}
