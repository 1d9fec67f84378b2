package pipelines

import (
	"context"
	"log/slog"
	"time"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/ports"
)

// Comments attached on administrative terminal transitions during creation.
const (
	commentAllUnresolved = "All positions not present in the main product list."
	commentZeroQuantity  = "All order positions have zero quantity."
)

// OrderCreationPipeline turns Registered orders into outbound order files.
//
// For every Registered order it loads the positions and decides:
//   - positions failed to load        -> Stopped
//   - no positions at all             -> Canceled (+comment)
//   - no position resolves downstream -> Processed (+comment), nothing to ship
//   - otherwise the order file is written and the order becomes Created,
//     or Error when the file could not be produced.
type OrderCreationPipeline struct {
	gateway ports.OrderGateway
	writer  ports.OrderFileWriter
	logger  *slog.Logger
}

// NewOrderCreationPipeline creates the creation stage.
func NewOrderCreationPipeline(gateway ports.OrderGateway, writer ports.OrderFileWriter, logger *slog.Logger) *OrderCreationPipeline {
	return &OrderCreationPipeline{
		gateway: gateway,
		writer:  writer,
		logger:  logger.With("component", "order_creation"),
	}
}

// Run executes one creation pass. Side effects only; every per-order
// failure is isolated and logged.
func (p *OrderCreationPipeline) Run(ctx context.Context) {
	p.logger.InfoContext(ctx, "Reading registered orders")

	orders, err := p.gateway.OrdersByStatus(ctx, order.Registered)
	if err != nil {
		p.logger.ErrorContext(ctx, "Cannot read registered orders", "error", err)
		return
	}

	p.logger.InfoContext(ctx, "Orders to process", "count", len(orders))
	for _, o := range orders {
		p.processOrder(ctx, o)
	}

	p.logger.InfoContext(ctx, "Reading completed")
}

func (p *OrderCreationPipeline) processOrder(ctx context.Context, o *order.Order) {
	logger := p.logger.With("order", o.Symbol(), "id", o.ID())
	logger.InfoContext(ctx, "Processing order")

	positions, err := p.gateway.OrderPositions(ctx, o.ID())
	if err != nil {
		logger.ErrorContext(ctx, "Cannot load order positions", "error", err)
		if err := o.MarkStopped(time.Now()); err != nil {
			logger.ErrorContext(ctx, "Illegal transition", "error", err)
			return
		}
		p.persistStatus(ctx, o, logger)
		return
	}

	o.SetProducts(positions)

	switch {
	case len(positions) == 0:
		if err := o.Cancel(commentZeroQuantity, time.Now()); err != nil {
			logger.ErrorContext(ctx, "Illegal transition", "error", err)
			return
		}
		p.persistStatus(ctx, o, logger)
		if err := p.gateway.SetOrderComment(ctx, o.Comment(), o.ID()); err != nil {
			logger.ErrorContext(ctx, "Cannot update order comment", "error", err)
		}
		logger.InfoContext(ctx, "Order canceled: zero quantity positions")

	case !o.HasResolvedProducts():
		if err := o.CloseWithoutShipment(commentAllUnresolved, time.Now()); err != nil {
			logger.ErrorContext(ctx, "Illegal transition", "error", err)
			return
		}
		if err := p.gateway.SetOrderComment(ctx, o.Comment(), o.ID()); err != nil {
			logger.ErrorContext(ctx, "Cannot update order comment", "error", err)
		}
		p.persistStatus(ctx, o, logger)
		logger.InfoContext(ctx, "No position present in the main product list, order closed without shipment")

	default:
		p.createOrderFile(ctx, o, logger)
	}
}

func (p *OrderCreationPipeline) createOrderFile(ctx context.Context, o *order.Order, logger *slog.Logger) {
	fileName, err := p.writer.WriteOrderFile(o)
	if err != nil {
		logger.ErrorContext(ctx, "Cannot create order file", "error", err)
		if err := o.MarkFailed(time.Now()); err != nil {
			logger.ErrorContext(ctx, "Illegal transition", "error", err)
			return
		}
		p.persistStatus(ctx, o, logger)
		return
	}

	if err := o.MarkCreated(fileName, time.Now()); err != nil {
		logger.ErrorContext(ctx, "Illegal transition", "error", err)
		return
	}

	// The file already exists on disk at this point. If the write below
	// fails the row stays Registered and the next cycle produces the file
	// again; the row, not the file, decides what counts as done.
	if err := p.gateway.SaveCreationResult(ctx, o); err != nil {
		logger.ErrorContext(ctx, "Cannot save creation result", "error", err)
		return
	}

	logger.InfoContext(ctx, "Order processed correctly", "file", fileName)
}

func (p *OrderCreationPipeline) persistStatus(ctx context.Context, o *order.Order, logger *slog.Logger) {
	if err := p.gateway.UpdateOrderStatus(ctx, o.Status(), o.ID()); err != nil {
		logger.ErrorContext(ctx, "Cannot update order status", "status", o.Status(), "error", err)
	}
}
