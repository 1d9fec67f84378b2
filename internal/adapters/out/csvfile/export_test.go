package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"supplyorders/internal/adapters/out/csvfile"
	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportEncoder_CreateExportFiles(t *testing.T) {
	t.Run("should write one line per confirmed position", func(t *testing.T) {
		staging := t.TempDir()

		now := time.Now()
		o, err := order.RestoreOrder(1, "SYM-1", 42, order.Processed, order.NotSent,
			"", "", "", "", now, now)
		require.NoError(t, err)

		first, err := product.RestoreProduct(10, "Widget", "000123", 17, 5, 4)
		require.NoError(t, err)
		second, err := product.RestoreProduct(11, "Gadget", "000456", 18, 2, 2)
		require.NoError(t, err)
		o.SetProducts([]*product.Product{first, second})

		require.NoError(t, csvfile.NewExportEncoder(staging).CreateExportFiles(o))

		content, err := os.ReadFile(filepath.Join(staging, "000001.csv"))
		require.NoError(t, err)
		assert.Equal(t,
			"10;000123;Widget;4;\n"+
				"11;000456;Gadget;2;\n",
			string(content))
	})

	t.Run("should fail when the staging directory does not exist", func(t *testing.T) {
		now := time.Now()
		o, err := order.RestoreOrder(1, "SYM-1", 42, order.Processed, order.NotSent,
			"", "", "", "", now, now)
		require.NoError(t, err)

		err = csvfile.NewExportEncoder("/nonexistent/staging").CreateExportFiles(o)

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		var o order.Order

		err := csvfile.NewExportEncoder(t.TempDir()).CreateExportFiles(&o)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
