package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tahaaa22/Fawry--e-commerce-system/internal/config"
	domcustomer "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/customer"
	domproduct "github.com/tahaaa22/Fawry--e-commerce-system/internal/domain/product"
	"github.com/tahaaa22/Fawry--e-commerce-system/internal/infra/logging"
	"github.com/tahaaa22/Fawry--e-commerce-system/internal/infra/persistence/memory"
	httpapi "github.com/tahaaa22/Fawry--e-commerce-system/internal/interface/http"
	cartuc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/cart"
	cataloguc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/catalog"
	checkoutuc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/checkout"
	customeruc "github.com/tahaaa22/Fawry--e-commerce-system/internal/usecase/customer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(logging.Options{
		Service: "pos-checkout",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	catalogRepo := memory.NewCatalogRepository()
	cartRepo := memory.NewCartRepository()
	customerRepo := memory.NewCustomerRepository()

	if cfg.SeedDemo {
		seedDemo(catalogRepo, customerRepo, log)
	}

	api := httpapi.NewAPI(httpapi.Dependencies{
		CatalogService:  cataloguc.NewService(catalogRepo),
		CustomerService: customeruc.NewService(customerRepo),
		CartService:     cartuc.NewService(cartRepo, catalogRepo, nil),
		CheckoutService: checkoutuc.NewService(customerRepo, cartRepo, nil),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, api.Router()); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func seedDemo(catalogRepo *memory.CatalogRepository, customerRepo *memory.CustomerRepository, log *slog.Logger) {
	ctx := context.Background()
	expiry := time.Now().AddDate(0, 6, 0)

	products := []*domproduct.Product{
		domproduct.NewExpirableShippable("Cheese", 100, 5, expiry, 0.4),
		domproduct.NewExpirableShippable("Biscuits", 150, 2, expiry, 0.7),
		domproduct.NewShippable("TV", 150, 3, 7.0),
		domproduct.New("Mobile", 200, 10),
		domproduct.New("ScratchCard", 50, 20),
	}
	for _, p := range products {
		if _, err := catalogRepo.Create(ctx, p); err != nil {
			log.Warn("seed product", "name", p.Name, "err", err)
		}
	}

	if _, err := customerRepo.Create(ctx, domcustomer.New("Ali", 1000)); err != nil {
		log.Warn("seed customer", "err", err)
	}
	log.Info("seeded demo catalog", "products", len(products))
}
