package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"supplyorders/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs, logger)

	if err := app.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer app.JobManager().StopAll()

	startWebServer(configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		FtpHost:     goDotEnvVariable("FTP_HOST"),
		FtpUser:     goDotEnvVariable("FTP_USER"),
		FtpPassword: goDotEnvVariable("FTP_PASSWORD"),

		OrderQueuePath:    goDotEnvVariable("ORDER_QUEUE_PATH"),
		OrderResponsePath: goDotEnvVariable("ORDER_RESPONSE_PATH"),
		ArchivePath:       goDotEnvVariable("ARCHIVE_PATH"),
		ExportTempPath:    goDotEnvVariable("EXPORT_TEMP_PATH"),
		ExportZipTempPath: goDotEnvVariable("EXPORT_ZIP_TEMP_PATH"),

		IntervalSeconds: goDotEnvIntVariable("INTERVAL_SECONDS"),

		DisableOrderCreation:        goDotEnvBoolVariable("DISABLE_ORDER_CREATION"),
		DisableResponseIngestion:    goDotEnvBoolVariable("DISABLE_RESPONSE_INGESTION"),
		DisableConfirmationDelivery: goDotEnvBoolVariable("DISABLE_CONFIRMATION_DELIVERY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer value for %s", key)
	}
	return value
}

func goDotEnvBoolVariable(key string) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean value for %s", key)
	}
	return value
}

func startWebServer(port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
