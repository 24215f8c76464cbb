package main

import (
	"log"

	_ "storefront_checkout/docs"
	"storefront_checkout/internal/adapter/http/routes"
	"storefront_checkout/internal/infrastructure/config"
	"storefront_checkout/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Storefront Checkout API
// @version         1.0
// @description     Checkout sessions for the storefront: amount engine, payment routing and order intake.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Env)
	defer func() { _ = logger.Log.Sync() }()

	routes.Run(cfg)
}
