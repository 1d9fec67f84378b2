package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"supplyorders/internal/adapters/out/csvfile"
	"supplyorders/internal/adapters/out/fs"
	"supplyorders/internal/adapters/out/ftp"
	"supplyorders/internal/adapters/out/postgres/ordergateway"
	"supplyorders/internal/core/application/pipelines"
	"supplyorders/internal/jobs"
)

type CompositionRoot struct {
	jobManager *jobs.JobManager
}

// NewCompositionRoot wires the adapters, pipelines and jobs from the
// configuration.
func NewCompositionRoot(configs Config, logger *slog.Logger) CompositionRoot {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gateway := ordergateway.NewGormOrderGateway(dsn)
	storage := fs.NewStorage()
	ftpClient := ftp.NewClient(configs.FtpHost, configs.FtpUser, configs.FtpPassword)

	creation := pipelines.NewOrderCreationPipeline(
		gateway,
		csvfile.NewOrderFileWriter(configs.OrderQueuePath),
		logger,
	)
	ingestion := pipelines.NewResponseIngestionPipeline(
		gateway,
		storage,
		csvfile.NewResponseParser(configs.OrderResponsePath),
		configs.OrderResponsePath,
		configs.ArchivePath,
		logger,
	)
	delivery := pipelines.NewConfirmationDeliveryPipeline(
		gateway,
		storage,
		ftpClient,
		csvfile.NewExportEncoder(configs.ExportZipTempPath),
		configs.ExportTempPath,
		configs.ExportZipTempPath,
		logger,
	)

	orderFlowJob := jobs.NewOrderFlowJob(
		gateway,
		ftpClient,
		creation,
		ingestion,
		delivery,
		time.Duration(configs.IntervalSeconds)*time.Second,
		configs.DisableOrderCreation,
		configs.DisableResponseIngestion,
		configs.DisableConfirmationDelivery,
		logger,
	)

	return CompositionRoot{
		jobManager: jobs.NewJobManager(orderFlowJob),
	}
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}
