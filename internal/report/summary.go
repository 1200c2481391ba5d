package report

import (
	"assettracking/internal/lifecycle"

	"github.com/shopspring/decimal"
)

// OfficeTotal is the value of one office's assets in its local currency.
type OfficeTotal struct {
	OfficeID        int             `json:"office_id"`
	OfficeLocation  string          `json:"office_location"`
	CurrencyCode    string          `json:"currency_code"`
	AssetCount      int             `json:"asset_count"`
	TotalLocalValue decimal.Decimal `json:"total_local_value"`
	Critical        int             `json:"critical"`
	Warning         int             `json:"warning"`
	Normal          int             `json:"normal"`
}

// Summarize groups rows per office in order of first appearance.
func Summarize(rows []Row) []OfficeTotal {
	totals := make([]OfficeTotal, 0)
	positions := make(map[int]int)

	for _, row := range rows {
		pos, ok := positions[row.OfficeID]
		if !ok {
			pos = len(totals)
			positions[row.OfficeID] = pos
			totals = append(totals, OfficeTotal{
				OfficeID:        row.OfficeID,
				OfficeLocation:  row.OfficeLocation,
				CurrencyCode:    row.CurrencyCode,
				TotalLocalValue: decimal.Zero,
			})
		}

		total := &totals[pos]
		total.AssetCount++
		total.TotalLocalValue = total.TotalLocalValue.Add(row.LocalPrice)
		switch row.Urgency {
		case lifecycle.UrgencyCritical:
			total.Critical++
		case lifecycle.UrgencyWarning:
			total.Warning++
		default:
			total.Normal++
		}
	}

	return totals
}
