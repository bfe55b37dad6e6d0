package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"marketplace/cmd"
	marketplacehttp "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}

	config := cmd.Config{
		HTTPPort:                envVariable("HTTP_PORT"),
		DBHost:                  envVariable("DB_HOST"),
		DBPort:                  envVariable("DB_PORT"),
		DBUser:                  envVariable("DB_USER"),
		DBPassword:              envVariable("DB_PASSWORD"),
		DBName:                  envVariable("DB_NAME"),
		DBSslMode:               envVariable("DB_SSLMODE"),
		SMTPHost:                envVariable("SMTP_HOST"),
		SMTPPort:                envInt("SMTP_PORT"),
		SMTPUser:                envVariable("SMTP_USER"),
		SMTPPassword:            envVariable("SMTP_PASSWORD"),
		SMTPFrom:                envVariable("SMTP_FROM"),
		NotificationWorkers:     envInt("NOTIFICATION_WORKERS"),
		NotificationSendTimeout: envDuration("NOTIFICATION_SEND_TIMEOUT"),
	}
	return config
}

func envVariable(key string) string {
	return os.Getenv(key)
}

// envInt reads an integer variable; unset or malformed values come back as 0
// and the consumer falls back to its default.
func envInt(key string) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return value
}

// envDuration reads a duration variable such as "10s"; unset or malformed
// values come back as 0 and the consumer falls back to its default.
func envDuration(key string) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return 0
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the order repository relies on to signal
	// order ID collisions.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&productrepo.ProductDTO{},
		&productrepo.VendorDTO{},
		&outboxrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = marketplacehttp.NewRequestValidator()

	server := marketplacehttp.NewServer(
		app.CreateCheckoutCommandHandler(),
		app.CreateGetVendorOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
