package model_test

import (
	"testing"

	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatGrievanceNumber(t *testing.T) {
	assert.Equal(t, "GRV-2026-000001", model.FormatGrievanceNumber(2026, 1))
	assert.Equal(t, "GRV-2026-000042", model.FormatGrievanceNumber(2026, 42))
	assert.Equal(t, "GRV-2027-123456", model.FormatGrievanceNumber(2027, 123456))
	// После шести цифр номер растёт, но не обрезается.
	assert.Equal(t, "GRV-2027-1234567", model.FormatGrievanceNumber(2027, 1234567))
}

func TestParseRole(t *testing.T) {
	r, err := model.ParseRole("DEPT_OFFICER")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleDeptOfficer, r)

	_, err = model.ParseRole("ADMIN")
	assert.Error(t, err)

	_, err = model.ParseRole("")
	assert.Error(t, err)
}

func TestHistoryActorRoundTrip(t *testing.T) {
	var h model.StatusHistory
	h.SetActor(model.UserActor(42))
	assert.False(t, h.IsSystem)
	assert.Equal(t, int64(42), *h.ChangedBy)
	assert.Equal(t, model.UserActor(42), h.Actor())

	h.SetActor(model.SystemActor())
	assert.True(t, h.IsSystem)
	assert.Nil(t, h.ChangedBy)
	assert.True(t, h.Actor().System)
}

func TestActorString(t *testing.T) {
	assert.Equal(t, "user:42", model.UserActor(42).String())
	assert.Equal(t, "system", model.SystemActor().String())
}
