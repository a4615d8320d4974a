package domain

import (
	"fmt"
	"strings"
)

// SubscriptionState is the lifecycle state of a subscription
type SubscriptionState string

const (
	StateDraft          SubscriptionState = "draft"
	StateWaitingPayment SubscriptionState = "waiting_payment"
	StateConfirmed      SubscriptionState = "confirmed"
	StateActive         SubscriptionState = "active"
	StatePaused         SubscriptionState = "paused"
	StateExpired        SubscriptionState = "expired"
	StateCancel         SubscriptionState = "cancel"
)

var stateLabels = map[SubscriptionState]string{
	StateDraft:          "Draft",
	StateWaitingPayment: "Waiting Payment",
	StateConfirmed:      "Confirmed",
	StateActive:         "On Display",
	StatePaused:         "Paused",
	StateExpired:        "Expired",
	StateCancel:         "Cancelled",
}

// ProtectedStates hold the asset exclusively; at most one of them per asset per day
var ProtectedStates = []SubscriptionState{StateConfirmed, StateActive}

// TerminalStates are left only by cancel, which is terminal itself
var TerminalStates = []SubscriptionState{StateExpired, StateCancel}

// ParseSubscriptionState validates a state key
func ParseSubscriptionState(s string) (SubscriptionState, error) {
	st := SubscriptionState(strings.TrimSpace(s))
	if _, ok := stateLabels[st]; !ok {
		return "", fmt.Errorf("%w: state %q", ErrUnknownSelection, s)
	}
	return st, nil
}

// Label returns the human label of the state
func (s SubscriptionState) Label() string { return stateLabels[s] }

// IsProtected reports whether the state holds the asset
func (s SubscriptionState) IsProtected() bool {
	return s == StateConfirmed || s == StateActive
}

// IsTerminal reports whether the state is end-of-life
func (s SubscriptionState) IsTerminal() bool {
	return s == StateExpired || s == StateCancel
}

// ArtworkState is the approval state of the advertising content
type ArtworkState string

const (
	ArtworkPending  ArtworkState = "pending"
	ArtworkReceived ArtworkState = "received"
	ArtworkApproved ArtworkState = "approved"
)

var artworkLabels = map[ArtworkState]string{
	ArtworkPending:  "Pending",
	ArtworkReceived: "Received",
	ArtworkApproved: "Approved",
}

// ParseArtworkState validates an artwork state key
func ParseArtworkState(s string) (ArtworkState, error) {
	a := ArtworkState(strings.TrimSpace(s))
	if _, ok := artworkLabels[a]; !ok {
		return "", fmt.Errorf("%w: artwork state %q", ErrUnknownSelection, s)
	}
	return a, nil
}

// Label returns the human label of the artwork state
func (a ArtworkState) Label() string { return artworkLabels[a] }
