package entity

import "time"

// TransitionEvent records who moved a request between statuses, when, and
// with what inventory effect. Appended in the same transaction as the
// transition itself; also published to the notification sink after commit.
type TransitionEvent struct {
	ID            string
	RequestKind   string
	RequestID     string
	ItemID        string
	ActorID       string
	ActorRole     Role
	FromStatus    string
	ToStatus      string
	QuantityDelta int // positive = credited to stock, negative = debited
	Notes         string
	CreatedAt     time.Time
}
