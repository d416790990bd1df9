package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/cart"
	domcustomer "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/customer"
	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
	cartuc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/cart"
	cataloguc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/catalog"
	checkoutuc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/checkout"
	customeruc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/customer"
)

type API struct {
	catalogSvc  *cataloguc.Service
	customerSvc *customeruc.Service
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	validator   *validator.Validate
}

type Dependencies struct {
	CatalogService  *cataloguc.Service
	CustomerService *customeruc.Service
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
}

func NewAPI(deps Dependencies) *API {
	return &API{
		catalogSvc:  deps.CatalogService,
		customerSvc: deps.CustomerService,
		cartSvc:     deps.CartService,
		checkoutSvc: deps.CheckoutService,
		validator:   validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", a.handleListProducts)
		r.Post("/products", a.handleCreateProduct)
		r.Get("/products/{name}", a.handleGetProduct)

		r.Post("/customers", a.handleCreateCustomer)
		r.Route("/customers/{name}", func(cr chi.Router) {
			cr.Get("/cart", a.handleGetCart)
			cr.Post("/cart/items", a.handleAddCartItem)
			cr.Post("/checkout", a.handleCheckout)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapProduct(p *domproduct.Product) map[string]any {
	m := map[string]any{
		"name":      p.Name,
		"price":     p.Price,
		"quantity":  p.Quantity,
		"shippable": p.IsShippable(),
	}
	if p.Expiry != nil {
		m["expiry"] = p.Expiry
	}
	if p.Weight != nil {
		m["weight"] = *p.Weight
	}
	return m
}

func mapCart(customerName string, crt *domcart.Cart) map[string]any {
	items := make([]map[string]any, 0, len(crt.Entries()))
	for _, e := range crt.Entries() {
		items = append(items, map[string]any{
			"product":    e.Product.Name,
			"quantity":   e.Quantity,
			"unit_price": e.Product.Price,
		})
	}
	return map[string]any{
		"customer": customerName,
		"items":    items,
	}
}

func mapReceipt(rc *checkoutuc.Receipt) map[string]any {
	lines := make([]map[string]any, 0, len(rc.Lines))
	for _, l := range rc.Lines {
		lines = append(lines, map[string]any{
			"product":    l.Name,
			"quantity":   l.Quantity,
			"line_total": l.LineTotal,
		})
	}

	m := map[string]any{
		"order_id": rc.OrderID,
		"lines":    lines,
		"subtotal": rc.Subtotal,
		"shipping": rc.Shipping,
		"total":    rc.Total,
		"balance":  rc.BalanceAfter,
		"receipt":  rc.Render(),
	}
	if rc.Notice != nil {
		m["shipment_notice"] = rc.Notice.Render()
		m["package_weight"] = rc.Notice.TotalWeight
	}
	return m
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcustomer.ErrCustomerNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domproduct.ErrProductExists),
		errors.Is(err, domcustomer.ErrCustomerExists):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, domcart.ErrEmptyCart),
		errors.Is(err, domproduct.ErrExpired),
		errors.Is(err, domproduct.ErrInsufficientStock),
		errors.Is(err, domcustomer.ErrInsufficientBalance):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
