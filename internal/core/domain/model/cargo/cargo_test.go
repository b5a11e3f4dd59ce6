package cargo_test

import (
	"testing"

	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	c, err := cargo.NewCargo(
		kernel.NewUUID(), kernel.NewUUID(), cargo.PriorityNormal, 120.5, 42.0, "+15550001111",
	)
	require.NoError(t, err)
	return c
}

func advanceTo(t *testing.T, c *cargo.Cargo, path ...cargo.Status) {
	t.Helper()
	for _, s := range path {
		require.NoError(t, c.TransitionTo(s))
	}
}

func TestNewCargo(t *testing.T) {
	id := kernel.NewUUID()
	clientID := kernel.NewUUID()

	c, err := cargo.NewCargo(id, clientID, cargo.PriorityHigh, 50, 10, "+15550001111")

	require.NoError(t, err)
	assert.True(t, c.ID().IsEqual(id))
	assert.True(t, c.ClientID().IsEqual(clientID))
	assert.Equal(t, cargo.Pending, c.Status())
	assert.Equal(t, cargo.PriorityHigh, c.Priority())
	assert.Equal(t, 0, c.Version())
	assert.False(t, c.HasCarrier())
	assert.Nil(t, c.DriverID())
	assert.Nil(t, c.VehicleID())
	assert.Empty(t, c.DriverPhone())
}

func TestNewCargo_InvalidInput(t *testing.T) {
	validID := kernel.NewUUID()

	tests := []struct {
		name        string
		id          kernel.UUID
		clientID    kernel.UUID
		priority    cargo.Priority
		weightKg    float64
		distanceKm  float64
		clientPhone string
		wantErr     error
	}{
		{
			name: "zero cargo id", clientID: validID,
			priority: cargo.PriorityNormal, weightKg: 1, distanceKm: 1,
			clientPhone: "+15550001111", wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "zero client id", id: validID,
			priority: cargo.PriorityNormal, weightKg: 1, distanceKm: 1,
			clientPhone: "+15550001111", wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "unknown priority", id: validID, clientID: validID,
			priority: cargo.PriorityUnknown, weightKg: 1, distanceKm: 1,
			clientPhone: "+15550001111", wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "zero weight", id: validID, clientID: validID,
			priority: cargo.PriorityNormal, weightKg: 0, distanceKm: 1,
			clientPhone: "+15550001111", wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "negative distance", id: validID, clientID: validID,
			priority: cargo.PriorityNormal, weightKg: 1, distanceKm: -3,
			clientPhone: "+15550001111", wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "missing client phone", id: validID, clientID: validID,
			priority: cargo.PriorityNormal, weightKg: 1, distanceKm: 1,
			wantErr: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := cargo.NewCargo(
				tt.id, tt.clientID, tt.priority, tt.weightKg, tt.distanceKm, tt.clientPhone,
			)

			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestCargo_TransitionTo(t *testing.T) {
	c := newTestCargo(t)

	advanceTo(t, c, cargo.Quoted, cargo.Accepted)
	assert.Equal(t, cargo.Accepted, c.Status())

	err := c.TransitionTo(cargo.Delivered)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	assert.Equal(t, cargo.Accepted, c.Status(), "failed transition must not change status")
}

func TestCargo_TerminalStatusIsFrozen(t *testing.T) {
	c := newTestCargo(t)
	advanceTo(t, c, cargo.Cancelled)

	for _, target := range cargo.AllStatuses() {
		err := c.TransitionTo(target)
		require.Error(t, err, "cancelled -> %s must fail", target)
	}
	assert.Equal(t, cargo.Cancelled, c.Status())
}

func TestCargo_BindCarrier(t *testing.T) {
	c := newTestCargo(t)
	advanceTo(t, c, cargo.Quoted, cargo.Accepted)

	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	err := c.BindCarrier(driverID, vehicleID, "+15550002222")

	require.NoError(t, err)
	assert.Equal(t, cargo.FullyAssigned, c.Status())
	assert.True(t, c.HasCarrier())
	assert.True(t, c.IsCarriedBy(driverID))
	assert.False(t, c.IsCarriedBy(kernel.NewUUID()))
	assert.Equal(t, "+15550002222", c.DriverPhone())
}

func TestCargo_BindCarrier_FromPartiallyAssigned(t *testing.T) {
	c := newTestCargo(t)
	advanceTo(t, c, cargo.Quoted, cargo.Accepted, cargo.PartiallyAssigned)

	err := c.BindCarrier(kernel.NewUUID(), kernel.NewUUID(), "")

	require.NoError(t, err)
	assert.Equal(t, cargo.FullyAssigned, c.Status())
}

func TestCargo_BindCarrier_RebindWhileFullyAssigned(t *testing.T) {
	c := newTestCargo(t)
	advanceTo(t, c, cargo.Quoted, cargo.Accepted)
	require.NoError(t, c.BindCarrier(kernel.NewUUID(), kernel.NewUUID(), "+15550002222"))

	replacement := kernel.NewUUID()
	err := c.BindCarrier(replacement, kernel.NewUUID(), "+15550003333")

	require.NoError(t, err)
	assert.Equal(t, cargo.FullyAssigned, c.Status())
	assert.True(t, c.IsCarriedBy(replacement))
	assert.Equal(t, "+15550003333", c.DriverPhone())
}

func TestCargo_BindCarrier_NotAssignable(t *testing.T) {
	c := newTestCargo(t)

	err := c.BindCarrier(kernel.NewUUID(), kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	assert.Equal(t, cargo.Pending, c.Status())
	assert.False(t, c.HasCarrier())
}

func TestRestoreCargo(t *testing.T) {
	id := kernel.NewUUID()
	clientID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	c, err := cargo.RestoreCargo(
		id, clientID, cargo.InTransit, cargo.PriorityUrgent,
		75, 120, &driverID, &vehicleID, "+15550001111", "+15550002222", 4,
	)

	require.NoError(t, err)
	assert.Equal(t, cargo.InTransit, c.Status())
	assert.Equal(t, 4, c.Version())
	assert.True(t, c.IsCarriedBy(driverID))
	assert.Equal(t, "+15550002222", c.DriverPhone())
}

func TestRestoreCargo_DisputedRoundTrips(t *testing.T) {
	c, err := cargo.RestoreCargo(
		kernel.NewUUID(), kernel.NewUUID(), cargo.Disputed, cargo.PriorityNormal,
		10, 5, nil, nil, "+15550001111", "", 1,
	)

	require.NoError(t, err)
	assert.Equal(t, cargo.Disputed, c.Status())

	// Disputed resolves only toward the terminal statuses
	require.NoError(t, c.TransitionTo(cargo.Delivered))
}

func TestRestoreCargo_DriverWithoutVehicle(t *testing.T) {
	driverID := kernel.NewUUID()

	_, err := cargo.RestoreCargo(
		kernel.NewUUID(), kernel.NewUUID(), cargo.FullyAssigned, cargo.PriorityNormal,
		10, 5, &driverID, nil, "+15550001111", "", 0,
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCargo_Clone(t *testing.T) {
	c := newTestCargo(t)
	advanceTo(t, c, cargo.Quoted, cargo.Accepted)
	require.NoError(t, c.BindCarrier(kernel.NewUUID(), kernel.NewUUID(), "+15550002222"))

	clone := c.Clone()
	require.NoError(t, clone.BindCarrier(kernel.NewUUID(), kernel.NewUUID(), "+15550009999"))
	require.NoError(t, clone.TransitionTo(cargo.PickedUp))

	assert.Equal(t, cargo.FullyAssigned, c.Status(), "clone mutation must not leak back")
	assert.NotEqual(t, c.DriverID(), clone.DriverID())
	assert.True(t, c.IsEqual(clone), "clone keeps the identity")
}

func TestCargo_CloneNil(t *testing.T) {
	var c *cargo.Cargo

	assert.Nil(t, c.Clone())
}

func TestCargo_Validate(t *testing.T) {
	require.NoError(t, newTestCargo(t).Validate())

	var nilCargo *cargo.Cargo
	require.ErrorIs(t, nilCargo.Validate(), cargo.ErrCargoIsNotConstructed)
	require.ErrorIs(t, (&cargo.Cargo{}).Validate(), cargo.ErrCargoIsNotConstructed)
}
