package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("valid amounts", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 99, 100, 1250, 999999} {
			price, err := kernel.NewPrice(cents)

			require.NoError(t, err)
			require.NoError(t, price.Validate())
			assert.Equal(t, cents, price.Cents())
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrice_Validate_ZeroValue(t *testing.T) {
	var price kernel.Price

	err := price.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
}

func TestPrice_Add(t *testing.T) {
	t.Run("sums amounts", func(t *testing.T) {
		a, _ := kernel.NewPrice(1250)
		b, _ := kernel.NewPrice(300)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(1550), sum.Cents())
	})

	t.Run("rejects zero-value operand", func(t *testing.T) {
		a, _ := kernel.NewPrice(1250)
		var b kernel.Price

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestPrice_Multiply(t *testing.T) {
	t.Run("scales by unit count", func(t *testing.T) {
		price, _ := kernel.NewPrice(450)

		total, err := price.Multiply(3)

		require.NoError(t, err)
		assert.Equal(t, int64(1350), total.Cents())
	})

	t.Run("zero units yields zero", func(t *testing.T) {
		price, _ := kernel.NewPrice(450)

		total, err := price.Multiply(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Cents())
	})

	t.Run("negative units are rejected", func(t *testing.T) {
		price, _ := kernel.NewPrice(450)

		_, err := price.Multiply(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrice_String(t *testing.T) {
	price, _ := kernel.NewPrice(1205)

	assert.Equal(t, "12.05", price.String())
}
