package lifecycle

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Operation is a lifecycle action on a subscription
type Operation string

const (
	OpRequestApproval Operation = "request_approval"
	OpConfirm         Operation = "confirm"
	OpActivate        Operation = "activate"
	OpPause           Operation = "pause"
	OpCancel          Operation = "cancel"
	OpToDraft         Operation = "to_draft"
	OpApproveArtwork  Operation = "approve_artwork"
	// OpExpire is issued by the scheduler once the booked period is over
	OpExpire Operation = "expire"
)

// targets maps state-changing operations to the state they produce
var targets = map[Operation]domain.SubscriptionState{
	OpRequestApproval: domain.StateWaitingPayment,
	OpConfirm:         domain.StateConfirmed,
	OpActivate:        domain.StateActive,
	OpPause:           domain.StatePaused,
	OpCancel:          domain.StateCancel,
	OpToDraft:         domain.StateDraft,
	OpExpire:          domain.StateExpired,
}

// expirable are the states a booking can expire from
var expirable = map[domain.SubscriptionState]bool{
	domain.StateConfirmed: true,
	domain.StateActive:    true,
	domain.StatePaused:    true,
}

// AllOperations lists every operation in a stable order
var AllOperations = []Operation{
	OpRequestApproval, OpConfirm, OpActivate, OpPause, OpCancel, OpToDraft, OpApproveArtwork, OpExpire,
}

// ParseOperation validates an operation name
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.TrimSpace(s))
	if _, ok := targets[op]; ok || op == OpApproveArtwork {
		return op, nil
	}
	return "", fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidTransition, s)
}

// ChangesState reports whether the operation moves the main lifecycle state
func (op Operation) ChangesState() bool {
	_, ok := targets[op]
	return ok
}

// Target returns the state the operation moves to; false for approve_artwork
func (op Operation) Target() (domain.SubscriptionState, bool) {
	st, ok := targets[op]
	return st, ok
}
