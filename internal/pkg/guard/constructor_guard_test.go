package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a command object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type placeOrderCommand struct {
		notes string
		guard guard.ConstructorGuard
	}

	var errCommandNotConstructed = errors.New("placeOrderCommand must be created via its constructor")

	newCommand := func(notes string) placeOrderCommand {
		return placeOrderCommand{notes: notes, guard: guard.NewConstructorGuard()}
	}

	validate := func(c placeOrderCommand) error {
		return c.guard.Validate(errCommandNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd := newCommand("no onions")

		require.NoError(t, validate(cmd))
		assert.Equal(t, "no onions", cmd.notes)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var cmd placeOrderCommand // zero value

		err := validate(cmd)

		require.Error(t, err)
		assert.Equal(t, errCommandNotConstructed, err)
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardImmutability verifies that the guard can be copied by value.
func TestConstructorGuardImmutability(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
