package domain

import (
	"errors"
	"fmt"
	"time"
)

// Business-rule violations. They are never transient and are never retried.
var (
	ErrAssetUnavailable    = errors.New("asset has no stock available")
	ErrAssetNotOperational = errors.New("asset is not operational")
	ErrAssetDoubleBooked   = errors.New("asset is already booked for an overlapping period")
	ErrAdvancePending      = errors.New("advance payment has not been received")
	ErrArtworkNotApproved  = errors.New("artwork has not been approved")

	// ErrTerminalState is returned for lifecycle operations on cancelled or expired subscriptions
	ErrTerminalState = errors.New("subscription is in a terminal state")

	// ErrInvalidTransition is returned when an operation is not defined from the current state
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnknownSelection is returned for values outside a closed enumeration
	ErrUnknownSelection = errors.New("unknown selection value")
)

// ConflictInfo identifies the booking that already holds the asset
type ConflictInfo struct {
	SubscriptionID int64
	Reference      string
	ContractName   string
	StartDate      time.Time
	EndDate        time.Time
}

// RuleViolation carries the context needed to render a precise message for a
// business-rule error. errors.Is matches it against the wrapped sentinel.
type RuleViolation struct {
	Kind      error
	AssetID   int64
	AssetName string

	TechnicalStatus TechnicalStatus
	Conflict        *ConflictInfo

	Required string
	Actual   string
}

func (v *RuleViolation) Error() string {
	switch v.Kind {
	case ErrAssetUnavailable:
		return fmt.Sprintf("%v: %s is out of service or out of the warehouse", v.Kind, v.AssetName)
	case ErrAssetNotOperational:
		return fmt.Sprintf("%v: %s cannot be booked, its current status is %s", v.Kind, v.AssetName, v.TechnicalStatus.Label())
	case ErrAssetDoubleBooked:
		if v.Conflict == nil {
			return fmt.Sprintf("%v: %s", v.Kind, v.AssetName)
		}
		return fmt.Sprintf("%v: %s is already assigned to contract %s from %s to %s",
			v.Kind, v.AssetName, v.Conflict.ContractName,
			v.Conflict.StartDate.Format(DisplayDateFormat), v.Conflict.EndDate.Format(DisplayDateFormat))
	default:
		if v.Required != "" || v.Actual != "" {
			return fmt.Sprintf("%v: required %s, actual %s", v.Kind, v.Required, v.Actual)
		}
		return v.Kind.Error()
	}
}

func (v *RuleViolation) Unwrap() error {
	return v.Kind
}

// IsRuleViolation reports whether err is one of the business-rule errors
func IsRuleViolation(err error) bool {
	var v *RuleViolation
	return errors.As(err, &v)
}

// ViolationKind returns a short stable name of the business rule broken by err,
// or "" when err is not a rule violation
func ViolationKind(err error) string {
	switch {
	case errors.Is(err, ErrAssetDoubleBooked):
		return "double_booked"
	case errors.Is(err, ErrAssetUnavailable):
		return "unavailable"
	case errors.Is(err, ErrAssetNotOperational):
		return "not_operational"
	case errors.Is(err, ErrAdvancePending):
		return "advance_pending"
	case errors.Is(err, ErrArtworkNotApproved):
		return "artwork_not_approved"
	case errors.Is(err, ErrTerminalState):
		return "terminal_state"
	default:
		return ""
	}
}
