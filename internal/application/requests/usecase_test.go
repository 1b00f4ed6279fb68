package requests_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/domain"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

func TestVisibility_PenggunaSeesOnlyOwn(t *testing.T) {
	f := newFixture()
	f.addItem("pensil", entity.ItemTypeConsumable, 10)
	ctx := context.Background()

	mine, err := f.uc.CreateConsumable(ctx, pengguna, dto.CreateConsumableRequest{ItemID: "pensil", Quantity: 1})
	require.NoError(t, err)
	other := pengguna
	other.ID = "user-2"
	theirs, err := f.uc.CreateConsumable(ctx, other, dto.CreateConsumableRequest{ItemID: "pensil", Quantity: 2})
	require.NoError(t, err)

	list, err := f.uc.ListConsumables(ctx, pengguna)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine, list[0].ID)

	// Admin and Kepala Sekolah see everything.
	list, err = f.uc.ListConsumables(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	list, err = f.uc.ListConsumables(ctx, headmaster)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Reading someone else's request is forbidden.
	_, err = f.uc.GetConsumable(ctx, pengguna, theirs)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	got, err := f.uc.GetConsumable(ctx, headmaster, theirs)
	require.NoError(t, err)
	assert.Equal(t, theirs, got.ID)
}

func TestPermittedTransitions_FollowsStatusAndRole(t *testing.T) {
	f := newFixture()
	f.addItem("pensil", entity.ItemTypeConsumable, 10)
	ctx := context.Background()

	id, err := f.uc.CreateConsumable(ctx, pengguna, dto.CreateConsumableRequest{ItemID: "pensil", Quantity: 1})
	require.NoError(t, err)

	targets, err := f.uc.PermittedTransitions(ctx, entity.RoleHeadmaster, workflow.KindConsumable, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{workflow.StatusApprovedByHeadmaster, workflow.StatusRejected}, targets)

	targets, err = f.uc.PermittedTransitions(ctx, entity.RoleAdmin, workflow.KindConsumable, id)
	require.NoError(t, err)
	assert.Empty(t, targets, "admin waits for the headmaster tier")

	require.NoError(t, f.uc.Transition(ctx, workflow.KindConsumable, id, headmaster, workflow.StatusApprovedByHeadmaster, ""))

	targets, err = f.uc.PermittedTransitions(ctx, entity.RoleAdmin, workflow.KindConsumable, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{workflow.StatusApproved, workflow.StatusRejected}, targets)

	_, err = f.uc.PermittedTransitions(ctx, entity.RoleAdmin, workflow.KindConsumable, "hilang")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_OwnershipAndOrder(t *testing.T) {
	f := newFixture()
	f.addItem("pensil", entity.ItemTypeConsumable, 10)
	ctx := context.Background()

	id, err := f.uc.CreateConsumable(ctx, pengguna, dto.CreateConsumableRequest{ItemID: "pensil", Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, f.uc.Transition(ctx, workflow.KindConsumable, id, headmaster, workflow.StatusApprovedByHeadmaster, ""))
	require.NoError(t, f.uc.Transition(ctx, workflow.KindConsumable, id, admin, workflow.StatusApproved, ""))

	// The requester reads their own trail.
	events, err := f.uc.History(ctx, pengguna, workflow.KindConsumable, id)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, workflow.StatusApprovedByHeadmaster, events[0].ToStatus)
	assert.Equal(t, workflow.StatusApproved, events[1].ToStatus)

	// A different requester may not.
	other := pengguna
	other.ID = "user-2"
	_, err = f.uc.History(ctx, other, workflow.KindConsumable, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin always may.
	events, err = f.uc.History(ctx, admin, workflow.KindConsumable, id)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
