package pipelines

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"time"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/ports"
)

const (
	// ConfirmationPrefix starts every confirmation artifact filename.
	ConfirmationPrefix = "ON"

	// controlFileContent is the body of the control artifact that signals
	// transfer start to the receiving system.
	controlFileContent = "Startup file..."

	commentNoConfirmedQuantity = "All products have 0 quantity."
)

// ConfirmationDeliveryPipeline uploads confirmation packages for orders
// the partner has acknowledged.
//
// For every order with status Processing or Processed and FTP status
// NotSent it stages two artifacts — a textual control file and a zipped
// export payload — and uploads both into the client's FTP directory. The
// order is marked Sent only when every step succeeded; any failure marks
// it SendFailed. An order with no confirmed positions is Canceled instead,
// leaving the FTP sub-state untouched.
type ConfirmationDeliveryPipeline struct {
	gateway        ports.OrderGateway
	storage        ports.FileStorage
	ftp            ports.FtpClient
	encoder        ports.ExportEncoder
	stagingPath    string
	zipStagingPath string
	logger         *slog.Logger
}

// NewConfirmationDeliveryPipeline creates the delivery stage. stagingPath
// holds the control artifact and the finished archive; zipStagingPath is
// the directory the export payload is written to and zipped from.
func NewConfirmationDeliveryPipeline(
	gateway ports.OrderGateway,
	storage ports.FileStorage,
	ftp ports.FtpClient,
	encoder ports.ExportEncoder,
	stagingPath string,
	zipStagingPath string,
	logger *slog.Logger,
) *ConfirmationDeliveryPipeline {
	return &ConfirmationDeliveryPipeline{
		gateway:        gateway,
		storage:        storage,
		ftp:            ftp,
		encoder:        encoder,
		stagingPath:    stagingPath,
		zipStagingPath: zipStagingPath,
		logger:         logger.With("component", "confirmation_delivery"),
	}
}

// Run executes one delivery pass. Side effects only; every per-order
// failure is isolated and logged.
func (p *ConfirmationDeliveryPipeline) Run(ctx context.Context) {
	p.logger.InfoContext(ctx, "Analysing orders for confirmation")

	orders, err := p.gateway.OrdersToConfirm(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "Cannot read orders to confirm", "error", err)
		return
	}

	p.logger.InfoContext(ctx, "Orders prepared for confirmation", "count", len(orders))
	for _, o := range orders {
		p.processOrder(ctx, o)
	}

	p.logger.InfoContext(ctx, "Analysis completed")
}

func (p *ConfirmationDeliveryPipeline) processOrder(ctx context.Context, o *order.Order) {
	logger := p.logger.With("order", o.Symbol(), "id", o.ID())
	logger.InfoContext(ctx, "Processing order")

	positions, err := p.gateway.ConfirmedOrderPositions(ctx, o.ID())
	if err != nil {
		logger.ErrorContext(ctx, "Cannot load confirmed positions", "error", err)
		p.markDeliveryFailed(ctx, o, logger)
		return
	}

	if len(positions) == 0 {
		if err := o.Cancel(commentNoConfirmedQuantity, time.Now()); err != nil {
			logger.ErrorContext(ctx, "Illegal transition", "error", err)
			return
		}
		if err := p.gateway.UpdateOrderStatus(ctx, o.Status(), o.ID()); err != nil {
			logger.ErrorContext(ctx, "Cannot update order status", "error", err)
		}
		if err := p.gateway.SetOrderComment(ctx, o.Comment(), o.ID()); err != nil {
			logger.ErrorContext(ctx, "Cannot update order comment", "error", err)
		}
		logger.InfoContext(ctx, "Order canceled: no confirmed quantities")
		return
	}

	o.SetProducts(positions)

	p.clearStaging(ctx, logger)
	defer p.clearStaging(ctx, logger)

	ftpDir, err := p.gateway.FtpDirectory(ctx, o.ClientCompanyID())
	if err != nil || ftpDir == "" {
		logger.ErrorContext(ctx, "Cannot resolve client FTP directory",
			"client", o.ClientCompanyID(), "error", err)
		p.markDeliveryFailed(ctx, o, logger)
		return
	}

	exists, err := p.ftp.DirExists(ctx, ftpDir)
	if err != nil || !exists {
		logger.ErrorContext(ctx, "Destination FTP directory not found",
			"directory", ftpDir, "error", err)
		p.markDeliveryFailed(ctx, o, logger)
		return
	}

	p.deliver(ctx, o, ftpDir, logger)
}

func (p *ConfirmationDeliveryPipeline) deliver(ctx context.Context, o *order.Order, ftpDir string, logger *slog.Logger) {
	stem := ConfirmationPrefix + order.PaddedNumber(o.ID())
	controlPath := filepath.Join(p.stagingPath, stem+".cft")
	archivePath := filepath.Join(p.stagingPath, stem+".zip")

	controlErr := p.storage.WriteTextFile(controlPath, controlFileContent)
	exportErr := p.encoder.CreateExportFiles(o)
	if controlErr != nil || exportErr != nil {
		logger.ErrorContext(ctx, "Cannot create confirmation files",
			"control_error", controlErr, "export_error", exportErr)
		p.markDeliveryFailed(ctx, o, logger)
		return
	}

	controlUploaded := true
	if err := p.ftp.Upload(ctx, controlPath, path.Join(ftpDir, stem+".cft")); err != nil {
		logger.ErrorContext(ctx, "Cannot upload control file", "error", err)
		controlUploaded = false
	}

	archiveUploaded := false
	if err := p.storage.CreateZip(p.zipStagingPath, archivePath); err != nil {
		logger.ErrorContext(ctx, "Cannot create payload archive", "error", err)
	} else if err := p.ftp.Upload(ctx, archivePath, path.Join(ftpDir, stem+".zip")); err != nil {
		logger.ErrorContext(ctx, "Cannot upload payload archive", "error", err)
	} else {
		archiveUploaded = true
	}

	if !controlUploaded || !archiveUploaded {
		logger.ErrorContext(ctx, "Not all confirmation files were delivered")
		p.markDeliveryFailed(ctx, o, logger)
		return
	}

	if err := o.MarkDelivered(stem+".zip", time.Now()); err != nil {
		logger.ErrorContext(ctx, "Illegal transition", "error", err)
		return
	}
	if err := p.gateway.SetFtpStatus(ctx, o.ID(), o.FtpStatus()); err != nil {
		logger.ErrorContext(ctx, "Cannot update confirmation flag", "error", err)
	}
	if err := p.gateway.SetFtpFile(ctx, o.ID(), o.FtpFile()); err != nil {
		logger.ErrorContext(ctx, "Cannot record delivered file name", "error", err)
	}

	logger.InfoContext(ctx, "Order placed on the client FTP directory",
		"directory", ftpDir, "control", stem+".cft", "archive", stem+".zip")
}

func (p *ConfirmationDeliveryPipeline) markDeliveryFailed(ctx context.Context, o *order.Order, logger *slog.Logger) {
	if err := o.MarkDeliveryFailed(); err != nil {
		logger.ErrorContext(ctx, "Illegal transition", "error", err)
		return
	}
	if err := p.gateway.SetFtpStatus(ctx, o.ID(), o.FtpStatus()); err != nil {
		logger.ErrorContext(ctx, "Cannot update confirmation flag", "error", err)
	}
}

func (p *ConfirmationDeliveryPipeline) clearStaging(ctx context.Context, logger *slog.Logger) {
	if err := p.storage.ClearDir(p.stagingPath); err != nil {
		logger.ErrorContext(ctx, "Cannot clear staging directory", "error", err)
	}
	if err := p.storage.ClearDir(p.zipStagingPath); err != nil {
		logger.ErrorContext(ctx, "Cannot clear zip staging directory", "error", err)
	}
}
