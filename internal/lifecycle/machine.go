package lifecycle

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Note is an audit entry produced by a transition. Delivery is best effort and
// never part of the transition itself.
type Note struct {
	SubscriptionID int64
	AuthorID       int64
	Body           string
	CreatedAt      time.Time
}

// TransitionContext carries everything a guard may need. Actor replaces any
// implicit "current user".
type TransitionContext struct {
	Actor      int64
	Asset      domain.AssetSnapshot
	Candidates []availability.Candidate
	Now        time.Time
}

// AvailabilityChecker validates that a protected booking may hold its asset
type AvailabilityChecker interface {
	Check(sub domain.Subscription, asset domain.AssetSnapshot, candidates []availability.Candidate) error
}

// Machine applies lifecycle operations to subscriptions
type Machine struct {
	availability AvailabilityChecker
}

// NewMachine creates a state machine guarded by the given availability checker
func NewMachine(checker AvailabilityChecker) *Machine {
	return &Machine{availability: checker}
}

// Apply runs op against a copy of sub. On success it returns the updated copy and
// the audit notes to deliver; on failure sub is returned unchanged with the error.
func (m *Machine) Apply(sub domain.Subscription, op Operation, tc TransitionContext) (domain.Subscription, []Note, error) {
	if _, err := ParseOperation(string(op)); err != nil {
		return sub, nil, err
	}

	// cancel is callable from any state, terminal ones included
	if op.ChangesState() && op != OpCancel && sub.IsTerminal() {
		return sub, nil, &domain.RuleViolation{
			Kind:      domain.ErrTerminalState,
			AssetID:   sub.AssetID,
			AssetName: tc.Asset.DisplayName(),
			Required:  "a non-terminal state",
			Actual:    sub.State.Label(),
		}
	}

	next := sub.Clone()
	var body string

	switch op {
	case OpApproveArtwork:
		next.ArtworkState = domain.ArtworkApproved
		body = "Artwork approved."

	case OpRequestApproval:
		next.State = domain.StateWaitingPayment
		body = "Approval requested: the account executive submitted this subscription for payment validation."

	case OpConfirm:
		next.State = domain.StateConfirmed
		body = "Subscription confirmed: the payment has been validated."

	case OpActivate:
		if err := activationGuard(sub, tc.Asset); err != nil {
			return sub, nil, err
		}
		next.State = domain.StateActive

	case OpExpire:
		if !expirable[sub.State] {
			return sub, nil, fmt.Errorf("%w: cannot expire a subscription in state %s", domain.ErrInvalidTransition, sub.State)
		}
		next.State = domain.StateExpired

	default:
		next.State = targets[op]
	}

	if body == "" {
		body = fmt.Sprintf("State changed from %s to %s.", sub.State.Label(), next.State.Label())
	}

	if op.ChangesState() {
		if err := m.Revalidate(next, tc.Asset, tc.Candidates); err != nil {
			return sub, nil, err
		}
	}

	if !tc.Now.IsZero() {
		next.UpdatedAt = tc.Now
	}

	notes := []Note{{
		SubscriptionID: sub.ID,
		AuthorID:       tc.Actor,
		Body:           body,
		CreatedAt:      tc.Now,
	}}
	return next, notes, nil
}

// Revalidate re-runs the availability constraint when sub is in a protected state.
// Callers use it after changing the asset or the dates of a confirmed or active booking.
func (m *Machine) Revalidate(sub domain.Subscription, asset domain.AssetSnapshot, candidates []availability.Candidate) error {
	if !sub.IsProtected() || m.availability == nil {
		return nil
	}
	return m.availability.Check(sub, asset, candidates)
}

// activationGuard blocks display until the artwork is approved and any advance is paid.
// Artwork is checked first so an unapproved artwork always reports as such.
func activationGuard(sub domain.Subscription, asset domain.AssetSnapshot) error {
	if sub.ArtworkState != domain.ArtworkApproved {
		return &domain.RuleViolation{
			Kind:      domain.ErrArtworkNotApproved,
			AssetID:   sub.AssetID,
			AssetName: asset.DisplayName(),
			Required:  domain.ArtworkApproved.Label(),
			Actual:    sub.ArtworkState.Label(),
		}
	}
	if sub.RequiresAdvance() && !sub.AdvanceReceived {
		return &domain.RuleViolation{
			Kind:      domain.ErrAdvancePending,
			AssetID:   sub.AssetID,
			AssetName: asset.DisplayName(),
			Required:  "advance received",
			Actual:    "advance pending",
		}
	}
	return nil
}
