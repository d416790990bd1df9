package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domcustomer "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/customer"
)

type createCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

type addCartItemRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

func (a *API) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.customerSvc.Create(r.Context(), domcustomer.New(req.Name, req.Balance))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"name":    created.Name,
		"balance": created.Balance,
	})
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	customerName := chi.URLParam(r, "name")

	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.AddItem(r.Context(), customerName, req.Product, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	customerName := chi.URLParam(r, "name")

	crt, err := a.cartSvc.GetCart(r.Context(), customerName)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(customerName, crt))
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	customerName := chi.URLParam(r, "name")

	receipt, err := a.checkoutSvc.Checkout(r.Context(), customerName)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapReceipt(receipt))
}
