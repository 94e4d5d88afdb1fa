package main

import (
	"flag"
	"fmt"
	"os"

	"gabriela-colchoes/internal/cli"
	"gabriela-colchoes/internal/config"
	"gabriela-colchoes/internal/logger"
	"gabriela-colchoes/internal/repository"
	"gabriela-colchoes/internal/service"

	"go.uber.org/zap"
)

func main() {
	adminMode := flag.Bool("admin", false, "run the admin console instead of the storefront")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting store",
		zap.String("env", cfg.Env),
		zap.String("store", cfg.Store.Name),
		zap.Bool("admin", *adminMode),
	)

	// One catalog shared by both surfaces: the admin writes, the storefront reads.
	catalog, err := repository.NewSeededCatalog(repository.DefaultProducts())
	if err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	if *adminMode {
		adminService, err := service.NewAdminService(
			catalog,
			cfg.Admin.Username,
			cfg.Admin.Password,
			cfg.Store.LowStockThreshold,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize admin store", zap.Error(err))
		}

		cli.NewAdmin(adminService, os.Stdin, os.Stdout, log).Run()
		log.Info("Admin console closed")
		return
	}

	cartService := service.NewCartService(catalog, log)
	checkoutService := service.NewCheckoutService(
		catalog,
		cfg.Store.Name,
		cfg.Store.WhatsAppNumber,
		log,
	)

	cli.NewStorefront(cartService, checkoutService, catalog, os.Stdin, os.Stdout, log).Run()
	log.Info("Storefront closed")
}
