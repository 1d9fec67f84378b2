package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"supplyorders/internal/core/application/pipelines"
	"supplyorders/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// OrderFlowJob runs the full order lifecycle cycle on a fixed interval:
// open the database connection, run the three pipelines sequentially,
// close the connection. Cycles never overlap; when a cycle is still
// running at the next tick, the tick is skipped.
type OrderFlowJob struct {
	gateway   ports.OrderGateway
	ftp       ports.FtpClient
	creation  *pipelines.OrderCreationPipeline
	ingestion *pipelines.ResponseIngestionPipeline
	delivery  *pipelines.ConfirmationDeliveryPipeline

	interval         time.Duration
	disableCreation  bool
	disableIngestion bool
	disableDelivery  bool

	cron   *cron.Cron
	cancel context.CancelFunc
	logger *slog.Logger
}

// NewOrderFlowJob creates the cycle job. The disable flags skip a stage
// inside the cycle without removing it from the schedule.
func NewOrderFlowJob(
	gateway ports.OrderGateway,
	ftp ports.FtpClient,
	creation *pipelines.OrderCreationPipeline,
	ingestion *pipelines.ResponseIngestionPipeline,
	delivery *pipelines.ConfirmationDeliveryPipeline,
	interval time.Duration,
	disableCreation, disableIngestion, disableDelivery bool,
	logger *slog.Logger,
) *OrderFlowJob {
	return &OrderFlowJob{
		gateway:          gateway,
		ftp:              ftp,
		creation:         creation,
		ingestion:        ingestion,
		delivery:         delivery,
		interval:         interval,
		disableCreation:  disableCreation,
		disableIngestion: disableIngestion,
		disableDelivery:  disableDelivery,
		cron:             cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:           logger.With("component", "order_flow_job"),
	}
}

// Start schedules the cycle to run at the configured interval.
func (j *OrderFlowJob) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel

	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.RunCycle(ctx)
	})
	if err != nil {
		cancel()
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Order flow job started", "interval", j.interval.String())
	return nil
}

// Stop cancels in-flight work at the next I/O boundary and stops the
// schedule.
func (j *OrderFlowJob) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
	j.cron.Stop()
	j.logger.Info("Order flow job stopped")
}

// RunCycle executes one full pass of the three pipelines against a
// freshly opened database connection.
func (j *OrderFlowJob) RunCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	logger := j.logger.With("cycle", uuid.NewString())
	logger.InfoContext(ctx, "Starting process")

	if err := j.gateway.Open(ctx); err != nil {
		logger.ErrorContext(ctx, "Cannot open database connection", "error", err)
		return
	}
	defer func() {
		if err := j.gateway.Close(); err != nil {
			logger.ErrorContext(ctx, "Cannot close database connection", "error", err)
		}
	}()

	if j.disableCreation {
		logger.InfoContext(ctx, "Skipped order creation")
	} else {
		j.creation.Run(ctx)
	}

	if j.disableIngestion {
		logger.InfoContext(ctx, "Skipped response ingestion")
	} else {
		j.ingestion.Run(ctx)
	}

	if j.disableDelivery {
		logger.InfoContext(ctx, "Skipped confirmation delivery")
	} else {
		j.runDelivery(ctx, logger)
	}

	logger.InfoContext(ctx, "Process completed")
	logger.InfoContext(ctx, "---------------------------------------------------------------")
}

// runDelivery brackets the delivery pipeline with the FTP session, so
// the connection only exists while there is something to upload against.
func (j *OrderFlowJob) runDelivery(ctx context.Context, logger *slog.Logger) {
	if err := j.ftp.Open(ctx); err != nil {
		logger.ErrorContext(ctx, "Cannot open FTP session", "error", err)
		return
	}
	defer func() {
		if err := j.ftp.Close(); err != nil {
			logger.ErrorContext(ctx, "Cannot close FTP session", "error", err)
		}
	}()

	j.delivery.Run(ctx)
}
