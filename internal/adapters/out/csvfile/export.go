package csvfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"supplyorders/internal/core/domain/model/order"
)

// ExportEncoder produces the structured export payload for a confirmation
// archive: one positions file per order, written into the zip staging
// directory.
//
// File layout: one `productId;centralIdentNumber;name;processedQuantity;`
// line per confirmed position.
type ExportEncoder struct {
	stagingPath string
}

// NewExportEncoder creates an encoder writing into the given zip staging
// directory.
func NewExportEncoder(stagingPath string) *ExportEncoder {
	return &ExportEncoder{stagingPath: stagingPath}
}

// CreateExportFiles writes the order's export payload. The order must
// carry its confirmed positions.
func (e *ExportEncoder) CreateExportFiles(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	var builder strings.Builder
	for _, p := range o.Products() {
		fmt.Fprintf(&builder, "%d;%s;%s;%d;\n",
			p.ID(), p.CentralIdentNumber(), p.Name(), p.ProcessedQuantity())
	}

	fileName := order.PaddedNumber(o.ID()) + ".csv"
	path := filepath.Join(e.stagingPath, fileName)
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("write export file %s: %w", path, err)
	}

	return nil
}
