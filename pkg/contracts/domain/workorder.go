package domain

import (
	"encoding/json"
	"time"
)

// ExecStatus is the canonical work order execution state.
type ExecStatus string

const (
	ExecStatusCompleted          ExecStatus = "Completed"
	ExecStatusOngoing            ExecStatus = "Ongoing"
	ExecStatusNotStarted         ExecStatus = "Not Started"
	ExecStatusPaused             ExecStatus = "Paused"
	ExecStatusPartiallyCompleted ExecStatus = "Partially Completed"
	ExecStatusPending            ExecStatus = "Pending"
	ExecStatusUnknown            ExecStatus = "Unknown"
)

// Active reports whether the status counts as in-flight work.
// Completed and Unknown orders are not active.
func (s ExecStatus) Active() bool {
	switch s {
	case ExecStatusOngoing, ExecStatusNotStarted, ExecStatusPaused,
		ExecStatusPartiallyCompleted, ExecStatusPending:
		return true
	}
	return false
}

// WorkOrderRecord is a canonical work order produced by the cleaning
// pipeline. UnbilledAmount is always max(0, AmountExclGST-BilledExclGST)
// and IsActive always mirrors ExecStatus.Active(); both are derived by
// the builder, never set independently.
type WorkOrderRecord struct {
	WOName         string     `json:"wo_name"`
	DealNameLinked string     `json:"deal_name_linked"`
	Sector         string     `json:"sector"`
	ExecStatus     ExecStatus `json:"exec_status"`
	IsActive       bool       `json:"is_active"`
	AmountExclGST  float64    `json:"amount_excl_gst"`
	BilledExclGST  float64    `json:"billed_excl_gst"`
	UnbilledAmount float64    `json:"unbilled_amount"`
	WOStatus       string     `json:"wo_status"`
	NatureOfWork   string     `json:"nature_of_work"`
	OwnerCode      string     `json:"owner_code"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
}

// MarshalJSON drops unresolved dates instead of emitting the zero time.
func (wo WorkOrderRecord) MarshalJSON() ([]byte, error) {
	type alias WorkOrderRecord
	aux := struct {
		alias
		StartDate *time.Time `json:"start_date,omitempty"`
		EndDate   *time.Time `json:"end_date,omitempty"`
	}{alias: alias(wo)}
	if !wo.StartDate.IsZero() {
		aux.StartDate = &wo.StartDate
	}
	if !wo.EndDate.IsZero() {
		aux.EndDate = &wo.EndDate
	}
	return json.Marshal(aux)
}
