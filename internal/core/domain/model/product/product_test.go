package product_test

import (
	"testing"

	"supplyorders/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_NewProduct(t *testing.T) {
	t.Run("should create a product with no confirmed quantity", func(t *testing.T) {
		p, err := product.NewProduct(1, "Widget", "000123", 17, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID())
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, "000123", p.CentralIdentNumber())
		assert.Equal(t, 17, p.CompanyID())
		assert.Equal(t, 5, p.Quantity())
		assert.Equal(t, 0, p.ProcessedQuantity())
		require.NoError(t, p.Validate())
	})

	t.Run("should reject a non-positive id", func(t *testing.T) {
		_, err := product.NewProduct(0, "Widget", "000123", 17, 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id is invalid")
	})

	t.Run("should reject a negative quantity", func(t *testing.T) {
		_, err := product.NewProduct(1, "Widget", "000123", 17, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product quantity is negative")
	})
}

func TestProduct_RestoreProduct(t *testing.T) {
	t.Run("should restore the confirmed quantity", func(t *testing.T) {
		p, err := product.RestoreProduct(2, "Gadget", "000456", 8, 10, 4)

		require.NoError(t, err)
		assert.Equal(t, 10, p.Quantity())
		assert.Equal(t, 4, p.ProcessedQuantity())
	})

	t.Run("should fail validation for a zero value product", func(t *testing.T) {
		var p product.Product
		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_IsResolved(t *testing.T) {
	t.Run("should be resolved with a real company id", func(t *testing.T) {
		p, err := product.NewProduct(1, "Widget", "000123", 17, 5)
		require.NoError(t, err)

		assert.True(t, p.IsResolved())
	})

	t.Run("should be unresolved with the sentinel company id", func(t *testing.T) {
		p, err := product.NewProduct(1, "Widget", "000123", product.UnresolvedCompanyID, 5)
		require.NoError(t, err)

		assert.False(t, p.IsResolved())
	})
}

func TestProduct_IsConfirmed(t *testing.T) {
	t.Run("should be confirmed once any quantity is acknowledged", func(t *testing.T) {
		p, err := product.RestoreProduct(1, "Widget", "000123", 17, 5, 3)
		require.NoError(t, err)

		assert.True(t, p.IsConfirmed())
	})

	t.Run("should not be confirmed with zero acknowledged quantity", func(t *testing.T) {
		p, err := product.NewProduct(1, "Widget", "000123", 17, 5)
		require.NoError(t, err)

		assert.False(t, p.IsConfirmed())
	})
}

func TestProduct_SetProcessedQuantity(t *testing.T) {
	t.Run("should overwrite the confirmed amount", func(t *testing.T) {
		p, err := product.RestoreProduct(1, "Widget", "000123", 17, 5, 3)
		require.NoError(t, err)

		require.NoError(t, p.SetProcessedQuantity(2))
		assert.Equal(t, 2, p.ProcessedQuantity())
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		p, err := product.NewProduct(1, "Widget", "000123", 17, 5)
		require.NoError(t, err)

		err = p.SetProcessedQuantity(-1)

		require.Error(t, err)
		assert.Equal(t, 0, p.ProcessedQuantity())
	})
}
