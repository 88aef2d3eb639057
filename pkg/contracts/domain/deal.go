package domain

import (
	"encoding/json"
	"time"
)

// DealStatus is the canonical deal state.
type DealStatus string

const (
	DealStatusOpen   DealStatus = "Open"
	DealStatusWon    DealStatus = "Won"
	DealStatusDead   DealStatus = "Dead"
	DealStatusOnHold DealStatus = "On Hold"
)

// DealRecord is a canonical deal produced by the cleaning pipeline.
// WeightedValue is always DealValue * Probability; the builder is the
// only writer, so the invariant cannot be broken downstream.
// Zero CloseDate/CreatedDate means the source had no parseable date.
type DealRecord struct {
	DealName      string     `json:"deal_name"`
	OwnerCode     string     `json:"owner_code"`
	ClientCode    string     `json:"client_code"`
	Status        DealStatus `json:"status"`
	Stage         string     `json:"stage"`
	Sector        string     `json:"sector"`
	DealValue     float64    `json:"deal_value"`
	Probability   float64    `json:"probability"`
	WeightedValue float64    `json:"weighted_value"`
	CloseDate     time.Time  `json:"close_date"`
	CreatedDate   time.Time  `json:"created_date"`
	Product       string     `json:"product"`
}

// HasCloseDate reports whether a close date was resolved for the deal.
func (d DealRecord) HasCloseDate() bool {
	return !d.CloseDate.IsZero()
}

// MarshalJSON drops unresolved dates instead of emitting the zero time.
func (d DealRecord) MarshalJSON() ([]byte, error) {
	type alias DealRecord
	aux := struct {
		alias
		CloseDate   *time.Time `json:"close_date,omitempty"`
		CreatedDate *time.Time `json:"created_date,omitempty"`
	}{alias: alias(d)}
	if !d.CloseDate.IsZero() {
		aux.CloseDate = &d.CloseDate
	}
	if !d.CreatedDate.IsZero() {
		aux.CreatedDate = &d.CreatedDate
	}
	return json.Marshal(aux)
}
