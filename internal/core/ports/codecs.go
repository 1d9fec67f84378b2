package ports

import "supplyorders/internal/core/domain/model/order"

// OrderFileWriter materializes a registered order as the outbound flat
// file the partner consumes.
type OrderFileWriter interface {
	// WriteOrderFile writes the order file into the outbound queue and
	// returns the produced filename.
	WriteOrderFile(o *order.Order) (string, error)
}

// ResponseParser turns an inbound response file into an order snapshot.
type ResponseParser interface {
	// Parse reads the named file from the inbox and parses it. A parse
	// failure returns an error and leaves the file untouched.
	Parse(fileName string) (*order.Response, error)
}

// ExportEncoder produces the structured export payload files for an
// order's confirmation archive.
type ExportEncoder interface {
	// CreateExportFiles writes the payload files for the order, with its
	// confirmed positions attached, into the zip staging directory.
	CreateExportFiles(o *order.Order) error
}
