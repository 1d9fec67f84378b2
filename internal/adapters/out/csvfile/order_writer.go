// Package csvfile implements the flat-file codecs of the partner
// exchange: the outbound order file, the inbound response file and the
// confirmation export payload. All formats are semicolon-separated; the
// filename conventions are part of the partner contract and reproduced
// exactly.
package csvfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"supplyorders/internal/core/domain/model/order"
)

// OrderFilePrefix starts every outbound order filename.
const OrderFilePrefix = "ORD"

// OrderFileWriter materializes registered orders as outbound order files
// in the order queue directory.
//
// File layout: a header line
// `id;symbol;clientCompanyId;;yyyy-MM-dd;Supply;` followed by one
// `productId;companyId;quantity;;;` line per position.
type OrderFileWriter struct {
	queuePath string
}

// NewOrderFileWriter creates a writer targeting the given queue directory.
func NewOrderFileWriter(queuePath string) *OrderFileWriter {
	return &OrderFileWriter{queuePath: queuePath}
}

// WriteOrderFile writes the order file and returns the produced filename
// (ORD + zero-padded order id + .csv).
func (w *OrderFileWriter) WriteOrderFile(o *order.Order) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	fileName := OrderFilePrefix + order.PaddedNumber(o.ID()) + ".csv"

	var builder strings.Builder
	fmt.Fprintf(&builder, "%d;%s;%d;;%s;Supply;\n",
		o.ID(), o.Symbol(), o.ClientCompanyID(), time.Now().Format("2006-01-02"))
	for _, p := range o.Products() {
		fmt.Fprintf(&builder, "%d;%d;%d;;;\n", p.ID(), p.CompanyID(), p.Quantity())
	}

	path := filepath.Join(w.queuePath, fileName)
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return "", fmt.Errorf("write order file %s: %w", path, err)
	}

	return fileName, nil
}
