package models

import (
	"fmt"
	"time"

	"assettracking/pkg/metadata"

	"github.com/shopspring/decimal"
)

// Asset is a single piece of hardware. Price is denominated in the base currency.
type Asset struct {
	ID           int             `json:"id" db:"id"`
	Kind         metadata.Kind   `json:"kind" db:"kind"`
	Brand        metadata.Brand  `json:"brand" db:"brand"`
	ModelName    string          `json:"model_name" db:"model_name"`
	PurchaseDate time.Time       `json:"purchase_date" db:"purchase_date"`
	Price        decimal.Decimal `json:"price" db:"price"`
	OfficeID     int             `json:"office_id" db:"office_id"`
}

type FlatAssetRecord struct {
	ID           int
	Kind         string
	Brand        string
	ModelName    string
	PurchaseDate time.Time
	Price        decimal.Decimal
	OfficeID     int
}

func (fa *FlatAssetRecord) TransformToAsset() (Asset, error) {
	kind, err := metadata.NewKind(fa.Kind)
	if err != nil {
		return Asset{}, fmt.Errorf("asset %d: %w", fa.ID, err)
	}
	brand, err := metadata.NewBrand(fa.Brand)
	if err != nil {
		return Asset{}, fmt.Errorf("asset %d: %w", fa.ID, err)
	}

	return Asset{
		ID:           fa.ID,
		Kind:         kind,
		Brand:        brand,
		ModelName:    fa.ModelName,
		PurchaseDate: fa.PurchaseDate,
		Price:        fa.Price,
		OfficeID:     fa.OfficeID,
	}, nil
}
