package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, workflow.StatusPending, workflow.InitialStatus(workflow.KindConsumable))
	assert.Equal(t, workflow.StatusPending, workflow.InitialStatus(workflow.KindBorrow))
	assert.Equal(t, workflow.StatusPending, workflow.InitialStatus(workflow.KindReturn))
}

func TestKindIsValid(t *testing.T) {
	assert.True(t, workflow.KindConsumable.IsValid())
	assert.True(t, workflow.KindBorrow.IsValid())
	assert.True(t, workflow.KindReturn.IsValid())
	assert.False(t, workflow.Kind("loan").IsValid())
	assert.False(t, workflow.Kind("").IsValid())
}

func TestCanTransition_Consumable(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{workflow.StatusPending, workflow.StatusApprovedByHeadmaster, true},
		{workflow.StatusPending, workflow.StatusRejected, true},
		{workflow.StatusApprovedByHeadmaster, workflow.StatusApproved, true},
		{workflow.StatusApprovedByHeadmaster, workflow.StatusRejected, true},

		// Skipping the headmaster tier is not allowed.
		{workflow.StatusPending, workflow.StatusApproved, false},
		// Terminal states have no successors.
		{workflow.StatusApproved, workflow.StatusRejected, false},
		{workflow.StatusRejected, workflow.StatusPending, false},
		// No backward edges.
		{workflow.StatusApprovedByHeadmaster, workflow.StatusPending, false},
	}
	for _, tc := range cases {
		got := workflow.CanTransition(workflow.KindConsumable, tc.from, tc.to)
		assert.Equalf(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransition_Borrow(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{workflow.StatusPending, workflow.StatusDisetujui, true},
		{workflow.StatusPending, workflow.StatusDitolak, true},
		{workflow.StatusDisetujui, workflow.StatusDiproses, true},
		{workflow.StatusDisetujui, workflow.StatusDitolak, true},
		{workflow.StatusDiproses, workflow.StatusDikembalikan, true},

		// Handover requires approval first.
		{workflow.StatusPending, workflow.StatusDiproses, false},
		// A handed-over loan can only be closed by receipt.
		{workflow.StatusDiproses, workflow.StatusDitolak, false},
		{workflow.StatusDikembalikan, workflow.StatusDiproses, false},
		{workflow.StatusDitolak, workflow.StatusDisetujui, false},
	}
	for _, tc := range cases {
		got := workflow.CanTransition(workflow.KindBorrow, tc.from, tc.to)
		assert.Equalf(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransition_Return(t *testing.T) {
	assert.True(t, workflow.CanTransition(workflow.KindReturn, workflow.StatusPending, workflow.StatusDisetujui))
	assert.True(t, workflow.CanTransition(workflow.KindReturn, workflow.StatusPending, workflow.StatusDitolak))
	assert.False(t, workflow.CanTransition(workflow.KindReturn, workflow.StatusDisetujui, workflow.StatusDitolak))
	assert.False(t, workflow.CanTransition(workflow.KindReturn, workflow.StatusDitolak, workflow.StatusPending))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, workflow.IsTerminal(workflow.KindConsumable, workflow.StatusApproved))
	assert.True(t, workflow.IsTerminal(workflow.KindConsumable, workflow.StatusRejected))
	assert.False(t, workflow.IsTerminal(workflow.KindConsumable, workflow.StatusApprovedByHeadmaster))

	assert.True(t, workflow.IsTerminal(workflow.KindBorrow, workflow.StatusDikembalikan))
	assert.True(t, workflow.IsTerminal(workflow.KindBorrow, workflow.StatusDitolak))
	assert.False(t, workflow.IsTerminal(workflow.KindBorrow, workflow.StatusDiproses))

	assert.True(t, workflow.IsTerminal(workflow.KindReturn, workflow.StatusDisetujui))
	assert.True(t, workflow.IsTerminal(workflow.KindReturn, workflow.StatusDitolak))
	assert.False(t, workflow.IsTerminal(workflow.KindReturn, workflow.StatusPending))
}

// Only four edges in the whole system carry an inventory effect.
func TestTransitionEffect(t *testing.T) {
	assert.Equal(t, workflow.EffectDebit,
		workflow.TransitionEffect(workflow.KindConsumable, workflow.StatusApprovedByHeadmaster, workflow.StatusApproved))
	assert.Equal(t, workflow.EffectDebit,
		workflow.TransitionEffect(workflow.KindBorrow, workflow.StatusDisetujui, workflow.StatusDiproses))
	assert.Equal(t, workflow.EffectCredit,
		workflow.TransitionEffect(workflow.KindBorrow, workflow.StatusDiproses, workflow.StatusDikembalikan))
	assert.Equal(t, workflow.EffectCredit,
		workflow.TransitionEffect(workflow.KindReturn, workflow.StatusPending, workflow.StatusDisetujui))

	// Everything else leaves stock alone.
	assert.Equal(t, workflow.EffectNone,
		workflow.TransitionEffect(workflow.KindConsumable, workflow.StatusPending, workflow.StatusApprovedByHeadmaster))
	assert.Equal(t, workflow.EffectNone,
		workflow.TransitionEffect(workflow.KindConsumable, workflow.StatusApprovedByHeadmaster, workflow.StatusRejected))
	assert.Equal(t, workflow.EffectNone,
		workflow.TransitionEffect(workflow.KindBorrow, workflow.StatusPending, workflow.StatusDisetujui))
	assert.Equal(t, workflow.EffectNone,
		workflow.TransitionEffect(workflow.KindBorrow, workflow.StatusDisetujui, workflow.StatusDitolak))
	assert.Equal(t, workflow.EffectNone,
		workflow.TransitionEffect(workflow.KindReturn, workflow.StatusPending, workflow.StatusDitolak))
}
