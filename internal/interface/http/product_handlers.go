package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
)

type createProductRequest struct {
	Name     string     `json:"name" validate:"required"`
	Price    float64    `json:"price" validate:"gte=0"`
	Quantity int64      `json:"quantity" validate:"gte=0"`
	Expiry   *time.Time `json:"expiry,omitempty"`
	Weight   *float64   `json:"weight,omitempty" validate:"omitempty,gt=0"`
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var p *domproduct.Product
	switch {
	case req.Expiry != nil && req.Weight != nil:
		p = domproduct.NewExpirableShippable(req.Name, req.Price, req.Quantity, *req.Expiry, *req.Weight)
	case req.Expiry != nil:
		p = domproduct.NewExpirable(req.Name, req.Price, req.Quantity, *req.Expiry)
	case req.Weight != nil:
		p = domproduct.NewShippable(req.Name, req.Price, req.Quantity, *req.Weight)
	default:
		p = domproduct.New(req.Name, req.Price, req.Quantity)
	}

	created, err := a.catalogSvc.Create(r.Context(), p)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(created))
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, err := a.catalogSvc.GetByName(r.Context(), name)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.catalogSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	result := make([]map[string]any, 0, len(products))
	for _, p := range products {
		result = append(result, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, result)
}
