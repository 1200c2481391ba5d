package report

import (
	"fmt"
	"sort"
	"time"

	"assettracking/internal/catalog"
	"assettracking/internal/lifecycle"
	custom_error "assettracking/pkg/errors"
	"assettracking/pkg/metadata"

	"github.com/shopspring/decimal"
)

type Converter interface {
	Convert(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

type Row struct {
	OfficeID       int               `json:"office_id"`
	OfficeLocation string            `json:"office_location"`
	AssetID        int               `json:"asset_id"`
	Kind           metadata.Kind     `json:"kind"`
	Brand          metadata.Brand    `json:"brand"`
	ModelName      string            `json:"model_name"`
	PurchaseDate   time.Time         `json:"purchase_date"`
	Price          decimal.Decimal   `json:"price"`
	LocalPrice     decimal.Decimal   `json:"local_price"`
	CurrencyCode   string            `json:"currency_code"`
	RemainingDays  float64           `json:"remaining_days"`
	Urgency        lifecycle.Urgency `json:"urgency"`
}

type Builder struct {
	converter    Converter
	evaluator    *lifecycle.Evaluator
	baseCurrency string
}

func NewBuilder(converter Converter, evaluator *lifecycle.Evaluator, baseCurrency string) *Builder {
	return &Builder{
		converter:    converter,
		evaluator:    evaluator,
		baseCurrency: baseCurrency,
	}
}

// Build orders the records by office and purchase date and turns each one into
// a report row. Any failing record aborts the whole build.
func (b *Builder) Build(records []catalog.Record, now time.Time) ([]Row, error) {
	sorted := make([]catalog.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Asset.OfficeID != sorted[j].Asset.OfficeID {
			return sorted[i].Asset.OfficeID < sorted[j].Asset.OfficeID
		}
		return sorted[i].Asset.PurchaseDate.Before(sorted[j].Asset.PurchaseDate)
	})

	rows := make([]Row, 0, len(sorted))
	for _, record := range sorted {
		row, err := b.buildRow(record, now)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (b *Builder) buildRow(record catalog.Record, now time.Time) (Row, error) {
	asset := record.Asset
	if asset.PurchaseDate.After(now) {
		return Row{}, &custom_error.InvalidAssetError{
			AssetID: asset.ID,
			Reason:  fmt.Sprintf("purchase date %s is after %s", asset.PurchaseDate.Format(time.RFC3339), now.Format(time.RFC3339)),
		}
	}

	localPrice, err := b.converter.Convert(asset.Price, b.baseCurrency, record.Office.CurrencyCode)
	if err != nil {
		return Row{}, fmt.Errorf("convert price of asset %d: %w", asset.ID, err)
	}

	remaining := b.evaluator.RemainingLife(asset, now)

	return Row{
		OfficeID:       record.Office.ID,
		OfficeLocation: record.Office.Location,
		AssetID:        asset.ID,
		Kind:           asset.Kind,
		Brand:          asset.Brand,
		ModelName:      asset.ModelName,
		PurchaseDate:   asset.PurchaseDate,
		Price:          asset.Price,
		LocalPrice:     localPrice,
		CurrencyCode:   record.Office.CurrencyCode,
		RemainingDays:  remaining,
		Urgency:        lifecycle.Classify(remaining),
	}, nil
}
