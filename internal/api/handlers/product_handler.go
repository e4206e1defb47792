package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"shop-backend/internal/models"
	"shop-backend/internal/repository"
)

const productsTable = "Products"

type ProductHandler struct {
	store repository.RecordStore
}

func NewProductHandler(store repository.RecordStore) *ProductHandler {
	return &ProductHandler{store: store}
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context(), productsTable, repository.ListOptions{})
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	products := lo.Map(records, func(rec repository.Record, _ int) map[string]any {
		return models.ProductFromRecord(rec)
	})
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.Get(r.Context(), productsTable, chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("Error fetching product: %v", err)
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, models.ProductFromRecord(rec))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if !decodeJSON(w, r, &body) {
		return
	}

	if f := models.MissingProductField(body); f != "" {
		writeMessage(w, http.StatusBadRequest, f+" is required")
		return
	}

	fields, err := models.ProductFields(body)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error creating product: "+err.Error())
		return
	}
	if _, ok := fields["Product Photo"]; !ok {
		fields["Product Photo"] = []any{}
	}

	rec, err := h.store.Create(r.Context(), productsTable, fields)
	if err != nil {
		// this path intentionally surfaces the upstream message
		log.Printf("Error creating product: %v", err)
		writeMessage(w, http.StatusBadRequest, "Error creating product: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, models.ProductFromRecord(rec))
}

// Update is a partial update: only allowed columns present in the body
// are sent to the store, everything else keeps its stored value.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if !decodeJSON(w, r, &body) {
		return
	}

	fields, err := models.ProductFields(body)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error updating product: "+err.Error())
		return
	}

	rec, err := h.store.Update(r.Context(), productsTable, chi.URLParam(r, "id"), fields)
	if err != nil {
		log.Printf("Error updating product: %v", err)
		writeMessage(w, http.StatusBadRequest, "Error updating product: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.ProductFromRecord(rec))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), productsTable, chi.URLParam(r, "id")); err != nil {
		log.Printf("Error deleting product: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error deleting product")
		return
	}

	writeMessage(w, http.StatusOK, "Product deleted successfully")
}
