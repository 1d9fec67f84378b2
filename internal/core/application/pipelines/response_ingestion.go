package pipelines

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/ports"
)

// ResponseGlob matches inbound partner response files in the inbox.
const ResponseGlob = "SH*"

// ResponseIngestionPipeline applies inbound response files to orders and
// archives the files out of the inbox.
//
// Files are processed in creation-time order, since a later file for the
// same order may be a correction. A response only updates the database
// when the order's currently persisted status is Created or Processing;
// either way the file is archived, with a count-based name suffix when
// the archive already holds files for the same order. Only a parse
// failure leaves the file in the inbox, for manual inspection.
type ResponseIngestionPipeline struct {
	gateway     ports.OrderGateway
	storage     ports.FileStorage
	parser      ports.ResponseParser
	inboxPath   string
	archivePath string
	logger      *slog.Logger
}

// NewResponseIngestionPipeline creates the ingestion stage.
func NewResponseIngestionPipeline(
	gateway ports.OrderGateway,
	storage ports.FileStorage,
	parser ports.ResponseParser,
	inboxPath string,
	archivePath string,
	logger *slog.Logger,
) *ResponseIngestionPipeline {
	return &ResponseIngestionPipeline{
		gateway:     gateway,
		storage:     storage,
		parser:      parser,
		inboxPath:   inboxPath,
		archivePath: archivePath,
		logger:      logger.With("component", "response_ingestion"),
	}
}

// Run executes one ingestion pass. Side effects only; every per-file
// failure is isolated and logged.
func (p *ResponseIngestionPipeline) Run(ctx context.Context) {
	p.logger.InfoContext(ctx, "Analysing response files")

	count, err := p.storage.CountFiles(p.inboxPath, ResponseGlob)
	if err != nil {
		p.logger.ErrorContext(ctx, "Cannot count inbox files", "error", err)
		return
	}
	if count == 0 {
		p.logger.InfoContext(ctx, "Analysis completed")
		return
	}

	p.logger.InfoContext(ctx, "Found response files", "count", count)
	fileNames, err := p.storage.ListFiles(p.inboxPath, ResponseGlob)
	if err != nil {
		p.logger.ErrorContext(ctx, "Cannot acquire file list", "error", err)
		return
	}

	for _, fileName := range fileNames {
		p.processFile(ctx, fileName)
	}

	p.logger.InfoContext(ctx, "Analysis completed")
}

func (p *ResponseIngestionPipeline) processFile(ctx context.Context, fileName string) {
	logger := p.logger.With("file", fileName)
	logger.InfoContext(ctx, "Processing file")

	response, err := p.parser.Parse(fileName)
	if err != nil {
		// Left in the inbox for manual review, never auto-archived.
		logger.ErrorContext(ctx, "Cannot parse response file", "error", err)
		return
	}

	currentStatus, err := p.gateway.OrderStatus(ctx, response.OrderID)
	if err != nil {
		logger.ErrorContext(ctx, "Cannot check order status", "order", response.OrderID, "error", err)
		p.archiveFile(ctx, fileName)
		return
	}

	o, err := order.RestoreOrder(response.OrderID, response.Symbol, response.ClientCompanyID,
		currentStatus, order.NotSent, "", "", "", "", time.Time{}, time.Time{})
	if err != nil {
		logger.ErrorContext(ctx, "Cannot restore order from response", "error", err)
		p.archiveFile(ctx, fileName)
		return
	}

	if err := o.ApplyResponse(response, time.Now()); err != nil {
		logger.InfoContext(ctx, "Order is not in an updatable status", "status", currentStatus)
		p.archiveFile(ctx, fileName)
		return
	}

	logger.InfoContext(ctx, "Updating order", "order", o.Symbol())
	for _, position := range response.Positions {
		if err := p.gateway.UpdateProcessedQuantity(ctx, position.ProductID, position.ProcessedQuantity); err != nil {
			logger.ErrorContext(ctx, "Cannot update processed quantity", "product", position.ProductID, "error", err)
		}
	}

	if err := p.gateway.SaveResponseResult(ctx, o); err != nil {
		logger.ErrorContext(ctx, "Cannot save response result", "error", err)
	} else {
		logger.InfoContext(ctx, "Order successfully updated", "status", o.Status())
	}

	// Archived even when the database write failed, so the inbox cannot
	// grow unboundedly from parsed-but-rejected files.
	p.archiveFile(ctx, fileName)
}

// archiveFile moves a response file out of the inbox. When the archive
// already holds files for the same key, the new file gets a _<count+1>
// suffix so repeated shortages for one order never overwrite each other.
func (p *ResponseIngestionPipeline) archiveFile(ctx context.Context, fileName string) {
	logger := p.logger.With("file", fileName)

	extension := filepath.Ext(fileName)
	key := strings.TrimSuffix(fileName, extension)

	existing, err := p.storage.CountFiles(p.archivePath, key+"*")
	if err != nil {
		// Retried next cycle from the inbox.
		logger.ErrorContext(ctx, "Cannot count archived files", "error", err)
		return
	}

	destination := fileName
	if existing > 0 {
		destination = fmt.Sprintf("%s_%d%s", key, existing+1, extension)
	}

	if err := p.storage.MoveFile(p.inboxPath, p.archivePath, fileName, destination); err != nil {
		logger.ErrorContext(ctx, "Cannot archive response file", "error", err)
		return
	}

	logger.InfoContext(ctx, "File archived", "as", destination)
}
