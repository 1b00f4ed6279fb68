// Package workflow holds the pure request-lifecycle rules: the per-kind
// status successor tables, the inventory effect of each edge, and the
// role-based authority resolver. Nothing here touches storage; the
// application layer evaluates these rules inside a transaction.
package workflow

// Kind discriminates the three request state machines.
type Kind string

const (
	KindConsumable Kind = "consumable"
	KindBorrow     Kind = "borrow"
	KindReturn     Kind = "return"
)

// IsValid reports whether k names a known request kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindConsumable, KindBorrow, KindReturn:
		return true
	default:
		return false
	}
}

// Status values as stored by the application. Consumable requests kept the
// English statuses of the first iteration; borrow and return requests use
// the Indonesian ones.
const (
	StatusPending = "Pending"

	// Consumable request statuses.
	StatusApprovedByHeadmaster = "Approved by Headmaster"
	StatusApproved             = "Approved"
	StatusRejected             = "Rejected"

	// Borrow and return request statuses.
	StatusDisetujui    = "Disetujui"
	StatusDiproses     = "Diproses"
	StatusDikembalikan = "Dikembalikan"
	StatusDitolak      = "Ditolak"
)

// successors maps each (kind, status) to its valid target statuses.
// Statuses missing from a kind's table are terminal.
var successors = map[Kind]map[string][]string{
	KindConsumable: {
		StatusPending:              {StatusApprovedByHeadmaster, StatusRejected},
		StatusApprovedByHeadmaster: {StatusApproved, StatusRejected},
	},
	KindBorrow: {
		StatusPending:   {StatusDisetujui, StatusDitolak},
		StatusDisetujui: {StatusDiproses, StatusDitolak},
		StatusDiproses:  {StatusDikembalikan},
	},
	KindReturn: {
		StatusPending: {StatusDisetujui, StatusDitolak},
	},
}

// InitialStatus is the status every new request starts in.
func InitialStatus(Kind) string { return StatusPending }

// Successors returns the valid target statuses from the given status.
// Terminal or unknown statuses yield nil.
func Successors(kind Kind, from string) []string {
	return successors[kind][from]
}

// CanTransition reports whether from -> to is an edge of the kind's
// state machine.
func CanTransition(kind Kind, from, to string) bool {
	for _, s := range successors[kind][from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined from status.
func IsTerminal(kind Kind, status string) bool {
	return len(successors[kind][status]) == 0
}

// Effect describes the inventory adjustment a transition carries.
type Effect int

const (
	// EffectNone leaves item stock untouched.
	EffectNone Effect = iota
	// EffectDebit commits the request quantity out of item stock.
	EffectDebit
	// EffectCredit returns quantity to item stock. On the borrow
	// Diproses -> Dikembalikan edge the credited amount is the loan's
	// remaining quantity, not the original request quantity.
	EffectCredit
)

// TransitionEffect returns the inventory effect of the from -> to edge.
// Only four edges in the whole system move stock:
//
//	consumable  Approved by Headmaster -> Approved      debit
//	borrow      Disetujui -> Diproses                   debit
//	borrow      Diproses -> Dikembalikan                credit
//	return      Pending -> Disetujui                    credit
func TransitionEffect(kind Kind, from, to string) Effect {
	switch kind {
	case KindConsumable:
		if from == StatusApprovedByHeadmaster && to == StatusApproved {
			return EffectDebit
		}
	case KindBorrow:
		if from == StatusDisetujui && to == StatusDiproses {
			return EffectDebit
		}
		if from == StatusDiproses && to == StatusDikembalikan {
			return EffectCredit
		}
	case KindReturn:
		if from == StatusPending && to == StatusDisetujui {
			return EffectCredit
		}
	}
	return EffectNone
}
