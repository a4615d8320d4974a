package domain

import "time"

// AssetSubscriptionsFilter selects the bookings of one asset
type AssetSubscriptionsFilter struct {
	AssetID int64

	// States limits the result to the given states; empty means all states
	States []SubscriptionState

	// StartDate and EndDate keep only bookings overlapping [StartDate, EndDate], bounds inclusive
	StartDate *time.Time
	EndDate   *time.Time

	// ExcludeID drops one booking, usually the one being validated
	ExcludeID int64
}

// CustomerSubscriptionsFilter selects the bookings of one customer
type CustomerSubscriptionsFilter struct {
	CustomerID int64
	State      *SubscriptionState
}
