package workflow

import "github.com/sekolahku/inventaris-api/internal/domain/entity"

// PermittedTransitions resolves which target statuses the role may move a
// request of the given kind to from its current status. It is the single
// authority for role gating: handlers may use it to offer actions, but the
// transition path re-checks it server-side on every call.
//
// Kepala Sekolah holds first-tier approval (pending consumable and borrow
// requests); Admin holds final processing, handover, return receipt and
// return-request approval. Pengguna never transitions anything.
func PermittedTransitions(role entity.Role, kind Kind, current string) []string {
	switch kind {
	case KindConsumable:
		switch {
		case role == entity.RoleHeadmaster && current == StatusPending:
			return []string{StatusApprovedByHeadmaster, StatusRejected}
		case role == entity.RoleAdmin && current == StatusApprovedByHeadmaster:
			return []string{StatusApproved, StatusRejected}
		}
	case KindBorrow:
		switch {
		case role == entity.RoleHeadmaster && current == StatusPending:
			return []string{StatusDisetujui, StatusDitolak}
		case role == entity.RoleAdmin && current == StatusDisetujui:
			return []string{StatusDiproses, StatusDitolak}
		case role == entity.RoleAdmin && current == StatusDiproses:
			return []string{StatusDikembalikan}
		}
	case KindReturn:
		if role == entity.RoleAdmin && current == StatusPending {
			return []string{StatusDisetujui, StatusDitolak}
		}
	}
	return nil
}

// IsPermitted reports whether the role may move a request of the given
// kind from current to target.
func IsPermitted(role entity.Role, kind Kind, current, target string) bool {
	for _, s := range PermittedTransitions(role, kind, current) {
		if s == target {
			return true
		}
	}
	return false
}
