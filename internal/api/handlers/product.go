package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/repository"
	"github.com/prolist/prolist/pkg/hscode"
)

// ProductHandler handles catalog product HTTP requests
type ProductHandler struct {
	productRepo *repository.ProductRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(productRepo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
	}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !hscode.Validate(hscode.Format(req.HSCode)) {
		respondError(w, http.StatusBadRequest, "hs_code must be a 6-digit HS code")
		return
	}

	product := &domain.Product{
		ID:            uuid.New(),
		Name:          req.Name,
		HSCode:        req.HSCode,
		UnitPriceFCFA: req.UnitPriceFCFA,
		WeightKg:      req.WeightKg,
		CreatedAt:     time.Now(),
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	if products == nil {
		products = []domain.Product{}
	}

	respondJSON(w, http.StatusOK, domain.ProductListResponse{Products: products})
}

// Get handles GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.productRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load product")
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}
