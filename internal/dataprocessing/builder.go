package dataprocessing

import (
	"strings"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// Keyword lists for semantic field resolution on the deals board.
// Each field is resolved independently; see ResolveColumn for the
// first-match-wins contract.
var (
	dealStatusKeywords      = []string{"status", "deal status"}
	dealStageKeywords       = []string{"stage", "deal stage"}
	dealSectorKeywords      = []string{"sector", "service"}
	dealValueKeywords       = []string{"value", "deal value", "masked"}
	dealCloseDateKeywords   = []string{"close date", "actual close", "close date (a)"}
	dealTentativeKeywords   = []string{"tentative", "expected close"}
	dealProbabilityKeywords = []string{"probability", "closure"}
	dealOwnerKeywords       = []string{"owner", "personnel"}
	dealClientKeywords      = []string{"client", "company"}
	dealProductKeywords     = []string{"product"}
	dealCreatedKeywords     = []string{"created", "creation"}
)

// Keyword lists for the work orders board.
var (
	woDealNameKeywords   = []string{"deal name", "deal"}
	woExecStatusKeywords = []string{"execution status", "exec status", "status"}
	woSectorKeywords     = []string{"sector"}
	woAmountExclKeywords = []string{"amount in rupees (excl", "excl of gst", "excl. of gst"}
	woAmountInclKeywords = []string{"amount in rupees (incl", "incl of gst"}
	woBilledKeywords     = []string{"billed value in rupees (excl", "billed value"}
	woStatusKeywords     = []string{"wo status", "billing status", "collection status"}
	woStartDateKeywords  = []string{"probable start", "start date", "date of po"}
	woEndDateKeywords    = []string{"probable end", "end date", "delivery date"}
	woNatureKeywords     = []string{"nature of work", "nature"}
	woOwnerKeywords      = []string{"bd/kam", "owner", "personnel"}
)

// BuildDealRecords converts raw deals board items into canonical deal
// records. Rows with an empty or header-placeholder name are dropped;
// the upstream source occasionally double-serializes its header row
// into the data. A malformed row becomes a record with defaulted
// fields rather than aborting the batch, and an empty input yields an
// empty, validly-typed slice.
func BuildDealRecords(items []domain.RawItem, schema domain.Schema) []domain.DealRecord {
	records := make([]domain.DealRecord, 0, len(items))

	for _, item := range items {
		name := item.Name()
		if name == "" || strings.ToLower(name) == "deal name" {
			continue
		}

		statusRaw := ResolveColumn(item, schema, dealStatusKeywords)
		stageRaw := ResolveColumn(item, schema, dealStageKeywords)
		sectorRaw := ResolveColumn(item, schema, dealSectorKeywords)
		valueRaw := ResolveColumn(item, schema, dealValueKeywords)
		closeDateRaw := ResolveColumn(item, schema, dealCloseDateKeywords)
		tentativeRaw := ResolveColumn(item, schema, dealTentativeKeywords)
		probabilityRaw := ResolveColumn(item, schema, dealProbabilityKeywords)
		ownerRaw := ResolveColumn(item, schema, dealOwnerKeywords)
		clientRaw := ResolveColumn(item, schema, dealClientKeywords)
		productRaw := ResolveColumn(item, schema, dealProductKeywords)
		createdRaw := ResolveColumn(item, schema, dealCreatedKeywords)

		value := NormalizeAmount(valueRaw)
		probability := ResolveProbability(probabilityRaw)

		sector := NormalizeText(sectorRaw)
		if sector == "" {
			sector = "unknown"
		}

		// Actual close date wins; tentative date is the fallback.
		closeDate := NormalizeDate(closeDateRaw)
		if closeDate.IsZero() {
			closeDate = NormalizeDate(tentativeRaw)
		}

		records = append(records, domain.DealRecord{
			DealName:      name,
			OwnerCode:     strings.TrimSpace(ownerRaw),
			ClientCode:    strings.TrimSpace(clientRaw),
			Status:        MapDealStatus(statusRaw, stageRaw),
			Stage:         NormalizeText(stageRaw),
			Sector:        sector,
			DealValue:     value,
			Probability:   probability,
			WeightedValue: value * probability,
			CloseDate:     closeDate,
			CreatedDate:   NormalizeDate(createdRaw),
			Product:       strings.TrimSpace(productRaw),
		})
	}

	return records
}

// BuildWorkOrderRecords converts raw work order board items into
// canonical work order records under the same fail-soft policy as
// BuildDealRecords.
func BuildWorkOrderRecords(items []domain.RawItem, schema domain.Schema) []domain.WorkOrderRecord {
	records := make([]domain.WorkOrderRecord, 0, len(items))

	for _, item := range items {
		name := item.Name()
		if name == "" {
			continue
		}

		dealNameRaw := ResolveColumn(item, schema, woDealNameKeywords)
		execStatusRaw := ResolveColumn(item, schema, woExecStatusKeywords)
		sectorRaw := ResolveColumn(item, schema, woSectorKeywords)
		amountExclRaw := ResolveColumn(item, schema, woAmountExclKeywords)
		amountInclRaw := ResolveColumn(item, schema, woAmountInclKeywords)
		billedRaw := ResolveColumn(item, schema, woBilledKeywords)
		woStatusRaw := ResolveColumn(item, schema, woStatusKeywords)
		startDateRaw := ResolveColumn(item, schema, woStartDateKeywords)
		endDateRaw := ResolveColumn(item, schema, woEndDateKeywords)
		natureRaw := ResolveColumn(item, schema, woNatureKeywords)
		ownerRaw := ResolveColumn(item, schema, woOwnerKeywords)

		// The excl-GST amount is authoritative; incl-GST fills the gap
		// when it is missing.
		amount := NormalizeAmount(amountExclRaw)
		if amount == 0 {
			amount = NormalizeAmount(amountInclRaw)
		}
		billed := NormalizeAmount(billedRaw)

		unbilled := amount - billed
		if unbilled < 0 {
			unbilled = 0
		}

		sector := NormalizeText(sectorRaw)
		if sector == "" {
			sector = "unknown"
		}

		linked := strings.TrimSpace(dealNameRaw)
		if linked == "" {
			linked = name
		}

		execStatus := MapExecStatus(execStatusRaw)

		records = append(records, domain.WorkOrderRecord{
			WOName:         name,
			DealNameLinked: linked,
			Sector:         sector,
			ExecStatus:     execStatus,
			IsActive:       execStatus.Active(),
			AmountExclGST:  amount,
			BilledExclGST:  billed,
			UnbilledAmount: unbilled,
			WOStatus:       NormalizeText(woStatusRaw),
			NatureOfWork:   strings.TrimSpace(natureRaw),
			OwnerCode:      strings.TrimSpace(ownerRaw),
			StartDate:      NormalizeDate(startDateRaw),
			EndDate:        NormalizeDate(endDateRaw),
		})
	}

	return records
}
