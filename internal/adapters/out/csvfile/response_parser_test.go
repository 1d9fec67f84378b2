package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"supplyorders/internal/adapters/out/csvfile"
	"supplyorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResponseFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResponseParser_Parse(t *testing.T) {
	t.Run("should parse the header and positions", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv",
			"1;SYM-1;42;;partial shipment\n"+
				"10;17;5;4\n"+
				"11;18;2;0\n")

		response, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.NoError(t, err)
		assert.Equal(t, int64(1), response.OrderID)
		assert.Equal(t, "SYM-1", response.Symbol)
		assert.Equal(t, 42, response.ClientCompanyID)
		assert.Equal(t, "partial shipment", response.Comment)
		assert.Equal(t, "SH000001_REG.csv", response.FileName)

		require.Len(t, response.Positions, 2)
		assert.Equal(t, int64(10), response.Positions[0].ProductID)
		assert.Equal(t, 17, response.Positions[0].CompanyID)
		assert.Equal(t, 5, response.Positions[0].Quantity)
		assert.Equal(t, 4, response.Positions[0].ProcessedQuantity)
		assert.Equal(t, 0, response.Positions[1].ProcessedQuantity)
	})

	t.Run("should accept a comma as the decimal separator", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv",
			"1;SYM-1;42;;\n"+
				"10;17;5,0;3,7\n")

		response, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.NoError(t, err)
		require.Len(t, response.Positions, 1)
		assert.Equal(t, 5, response.Positions[0].Quantity)
		assert.Equal(t, 3, response.Positions[0].ProcessedQuantity)
	})

	t.Run("should degrade an unparseable quantity to zero", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv",
			"1;SYM-1;42;;\n"+
				"10;17;n/a;4\n")

		response, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.NoError(t, err)
		assert.Equal(t, 0, response.Positions[0].Quantity)
		assert.Equal(t, 4, response.Positions[0].ProcessedQuantity)
	})

	t.Run("should mark the order processed when the close flag is set", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv", "1;SYM-1;42;cpl;\n")

		response, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.NoError(t, err)
		assert.Equal(t, order.Processed, response.Status)
	})

	t.Run("should accept the close flag case insensitively", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv", "1;SYM-1;42; CPL ;\n")

		response, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.NoError(t, err)
		assert.Equal(t, order.Processed, response.Status)
	})

	t.Run("should derive the status from the filename suffix", func(t *testing.T) {
		testCases := []struct {
			fileName string
			expected order.Status
		}{
			{"SH000001_REG.csv", order.Processing},
			{"SH000001_CPL.csv", order.Processed},
			{"SH000001.csv", order.Error},
		}

		for _, tc := range testCases {
			t.Run(tc.fileName, func(t *testing.T) {
				inbox := t.TempDir()
				writeResponseFile(t, inbox, tc.fileName, "1;SYM-1;42;;\n")

				response, err := csvfile.NewResponseParser(inbox).Parse(tc.fileName)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, response.Status)
			})
		}
	})

	t.Run("should fall back to the filename suffix for an unknown close flag", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_CPL.csv", "1;SYM-1;42;maybe;\n")

		response, err := csvfile.NewResponseParser(inbox).Parse("SH000001_CPL.csv")

		require.NoError(t, err)
		assert.Equal(t, order.Processed, response.Status)
	})

	t.Run("should reject a malformed header", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv", "1;SYM-1;42\n")

		_, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed header")
	})

	t.Run("should reject a malformed position", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv",
			"1;SYM-1;42;;\n"+
				"10;17\n")

		_, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed position")
	})

	t.Run("should reject an empty file", func(t *testing.T) {
		inbox := t.TempDir()
		writeResponseFile(t, inbox, "SH000001_REG.csv", "")

		_, err := csvfile.NewResponseParser(inbox).Parse("SH000001_REG.csv")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no header line")
	})

	t.Run("should reject a missing file", func(t *testing.T) {
		_, err := csvfile.NewResponseParser(t.TempDir()).Parse("SH000404.csv")

		require.Error(t, err)
	})
}
