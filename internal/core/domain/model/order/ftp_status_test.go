package order_test

import (
	"fmt"
	"testing"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFtpStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.NotSent))
		assert.Equal(t, 1, int(order.Sent))
		assert.Equal(t, 2, int(order.SendFailed))
	})
}

func TestFtpStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.FtpStatus{
			order.NotSent,
			order.Sent,
			order.SendFailed,
		}

		for _, status := range validStatuses {
			require.NoError(t, status.Validate(), "status %s", status.String())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.FtpStatus{
			order.FtpStatus(-1),
			order.FtpStatus(3),
			order.FtpStatus(42),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject ftp status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "ftp status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid ftp status", int(status)))
			})
		}
	})
}

func TestFtpStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		assert.Equal(t, "NotSent", order.NotSent.String())
		assert.Equal(t, "Sent", order.Sent.String())
		assert.Equal(t, "SendFailed", order.SendFailed.String())
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.FtpStatus(3).String())
	})
}

func TestFtpStatus_Send(t *testing.T) {
	t.Run("should send from NotSent", func(t *testing.T) {
		newStatus, err := order.NotSent.Send()

		require.NoError(t, err)
		assert.Equal(t, order.Sent, newStatus)
	})

	t.Run("should reject send from any other status", func(t *testing.T) {
		sources := []order.FtpStatus{order.Sent, order.SendFailed}

		for _, status := range sources {
			t.Run(fmt.Sprintf("should reject send from %s", status.String()), func(t *testing.T) {
				_, err := status.Send()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid ftp status to send", status.String()))
			})
		}
	})
}

func TestFtpStatus_Fail(t *testing.T) {
	t.Run("should fail from NotSent", func(t *testing.T) {
		newStatus, err := order.NotSent.Fail()

		require.NoError(t, err)
		assert.Equal(t, order.SendFailed, newStatus)
	})

	t.Run("should reject fail from any other status", func(t *testing.T) {
		_, err := order.Sent.Fail()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Sent is not a valid ftp status to fail")
	})
}
