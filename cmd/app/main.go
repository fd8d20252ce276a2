package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"printz/cmd"
	printzhttp "printz/internal/adapters/in/http"
	"printz/internal/adapters/out/postgres/orderrepo"
	"printz/internal/adapters/out/postgres/shoprepo"
	"printz/internal/adapters/out/postgres/studentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     intEnvVariable("SMTP_PORT", 587),
		SMTPUsername: goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:     goDotEnvVariable("SMTP_FROM"),

		LinkBaseURL:   goDotEnvVariable("LINK_BASE_URL"),
		StaleOrderAge: durationEnvVariable("STALE_ORDER_AGE", 2*time.Hour),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError is required so unique constraint violations surface
	// as gorm.ErrDuplicatedKey for the repositories to classify.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&shoprepo.ShopDTO{},
		&studentrepo.StudentDTO{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := printzhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionOrderStatusCommandHandler(),
		app.CreateSetShopPricesCommandHandler(),
		app.CreateSetShopActivityCommandHandler(),
		app.CreateGetStudentOrdersQueryHandler(),
		app.CreateGetShopOrdersQueryHandler(),
		app.CreateGetShopsQueryHandler(),
		app.CreateGetShopPricesQueryHandler(),
		app.CreateGetShopActivityQueryHandler(),
		app.CreateGetShopInsightsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
