package actor_test

import (
	"testing"

	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    actor.Role
		wantErr bool
	}{
		{input: "admin", want: actor.RoleAdmin},
		{input: "driver", want: actor.RoleDriver},
		{input: "client", want: actor.RoleClient},
		{input: "", wantErr: true},
		{input: "superadmin", wantErr: true},
		{input: "Admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := actor.RoleFromString(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	act, err := actor.NewActor(id, actor.RoleDriver)

	require.NoError(t, err)
	assert.True(t, act.ID.IsEqual(id))
	assert.Equal(t, actor.RoleDriver, act.Role)
}

func TestNewActor_Invalid(t *testing.T) {
	_, err := actor.NewActor(kernel.UUID{}, actor.RoleDriver)
	require.Error(t, err)

	_, err = actor.NewActor(kernel.NewUUID(), actor.Role("dispatcher"))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		name string
		role actor.Role
		want []actor.Capability
	}{
		{
			name: "admin",
			role: actor.RoleAdmin,
			want: []actor.Capability{
				actor.CapTransitionCargo,
				actor.CapManageAssignments,
				actor.CapCallClient,
				actor.CapCallDriver,
				actor.CapDownloadReceipt,
				actor.CapUploadProof,
				actor.CapReportIssue,
			},
		},
		{
			name: "driver",
			role: actor.RoleDriver,
			want: []actor.Capability{
				actor.CapAcceptCargo,
				actor.CapAdvanceOwnDelivery,
				actor.CapCallClient,
			},
		},
		{
			name: "client",
			role: actor.RoleClient,
			want: []actor.Capability{
				actor.CapCancelOwnCargo,
				actor.CapCallDriver,
				actor.CapDownloadReceipt,
				actor.CapTrackOwnCargo,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := actor.CapabilitiesFor(tt.role)

			require.Len(t, caps, len(tt.want))
			for _, c := range tt.want {
				assert.True(t, caps.Has(c), "%s must hold %s", tt.role, c)
			}
		})
	}
}

func TestCapabilitiesFor_RolesAreDisjointWhereItMatters(t *testing.T) {
	admin := actor.CapabilitiesFor(actor.RoleAdmin)
	driver := actor.CapabilitiesFor(actor.RoleDriver)
	client := actor.CapabilitiesFor(actor.RoleClient)

	// Only admins drive arbitrary lifecycle edges or manage assignments
	assert.False(t, driver.Has(actor.CapTransitionCargo))
	assert.False(t, client.Has(actor.CapTransitionCargo))
	assert.False(t, driver.Has(actor.CapManageAssignments))
	assert.False(t, client.Has(actor.CapManageAssignments))

	// Only drivers respond to proposals or advance physical custody
	assert.False(t, admin.Has(actor.CapAcceptCargo))
	assert.False(t, client.Has(actor.CapAcceptCargo))
	assert.False(t, admin.Has(actor.CapAdvanceOwnDelivery))

	// Only clients hold the own-cargo cancel and tracking capabilities
	assert.False(t, admin.Has(actor.CapCancelOwnCargo))
	assert.False(t, driver.Has(actor.CapCancelOwnCargo))
	assert.False(t, admin.Has(actor.CapTrackOwnCargo))
}

func TestCapabilitiesFor_UnknownRole(t *testing.T) {
	caps := actor.CapabilitiesFor(actor.Role("intruder"))

	assert.Empty(t, caps)
	assert.False(t, caps.Has(actor.CapTransitionCargo))
}
