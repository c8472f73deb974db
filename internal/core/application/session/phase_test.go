package session_test

import (
	"testing"

	"foodorder/internal/core/application/session"

	"github.com/stretchr/testify/assert"
)

func TestPhase_Validate(t *testing.T) {
	valid := []session.Phase{
		session.PhaseIdle,
		session.PhaseSubmitting,
		session.PhaseSucceeded,
		session.PhaseFailed,
	}
	for _, phase := range valid {
		assert.NoError(t, phase.Validate(), phase.String())
	}

	assert.Error(t, session.PhaseUnknown.Validate())
	assert.Error(t, session.Phase(42).Validate())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", session.PhaseIdle.String())
	assert.Equal(t, "submitting", session.PhaseSubmitting.String())
	assert.Equal(t, "succeeded", session.PhaseSucceeded.String())
	assert.Equal(t, "failed", session.PhaseFailed.String())
	assert.Equal(t, "unknown", session.PhaseUnknown.String())
	assert.Equal(t, "unknown", session.Phase(42).String())
}

func TestKind_Validate(t *testing.T) {
	assert.NoError(t, session.KindCreate.Validate())
	assert.NoError(t, session.KindEdit.Validate())
	assert.Error(t, session.KindUnknown.Validate())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "create", session.KindCreate.String())
	assert.Equal(t, "edit", session.KindEdit.String())
	assert.Equal(t, "unknown", session.KindUnknown.String())
}
