package order

// Response is the parsed snapshot of an inbound partner response file.
// It is not an aggregate: ingestion validates it against the currently
// persisted order before any of it is applied.
type Response struct {
	// OrderID identifies the order the response refers to.
	OrderID int64

	// Symbol is the order's display code as echoed by the partner.
	Symbol string

	// ClientCompanyID is the routing key echoed by the partner.
	ClientCompanyID int

	// Status is the lifecycle status the response carries: Processed when
	// the close flag marks the order complete, otherwise derived from the
	// filename suffix convention.
	Status Status

	// Comment is the free-text note from the response header.
	Comment string

	// FileName is the inbound file the snapshot was parsed from.
	FileName string

	// Positions are the confirmed quantities per product.
	Positions []ResponsePosition
}

// ResponsePosition is a single product line of a response file.
type ResponsePosition struct {
	ProductID         int64
	CompanyID         int
	Quantity          int
	ProcessedQuantity int
}
