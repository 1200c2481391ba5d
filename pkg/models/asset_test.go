package models

import (
	"testing"
	"time"

	"assettracking/pkg/metadata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformToAsset(t *testing.T) {
	purchased := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  FlatAssetRecord
		wantErr bool
	}{
		{
			name: "valid laptop",
			record: FlatAssetRecord{
				ID: 1, Kind: "laptop", Brand: "MacBook", ModelName: "MacBook Pro",
				PurchaseDate: purchased, Price: decimal.NewFromInt(1500), OfficeID: 1,
			},
		},
		{
			name:    "unknown kind",
			record:  FlatAssetRecord{ID: 2, Kind: "tablet", Brand: "samsung"},
			wantErr: true,
		},
		{
			name:    "unknown brand",
			record:  FlatAssetRecord{ID: 3, Kind: "laptop", Brand: "dell"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := tt.record.TransformToAsset()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, metadata.KindLaptop, asset.Kind)
			assert.Equal(t, metadata.BrandMacBook, asset.Brand)
			assert.Equal(t, "MacBook Pro", asset.ModelName)
			assert.True(t, asset.Price.Equal(decimal.NewFromInt(1500)))
			assert.Equal(t, purchased, asset.PurchaseDate)
			assert.Equal(t, 1, asset.OfficeID)
		})
	}
}
