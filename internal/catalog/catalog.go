package catalog

import (
	"fmt"

	custom_error "assettracking/pkg/errors"
	"assettracking/pkg/models"
)

// Record is an asset joined with the office it is assigned to.
type Record struct {
	Asset  models.Asset
	Office models.Office
}

func IndexOffices(offices []models.Office) (map[int]models.Office, error) {
	index := make(map[int]models.Office, len(offices))
	for _, office := range offices {
		if _, exists := index[office.ID]; exists {
			return nil, fmt.Errorf("duplicate office id %d in snapshot", office.ID)
		}
		index[office.ID] = office
	}
	return index, nil
}

// Consolidate merges per-kind asset collections into a single sequence and
// resolves every asset's office. Input order is kept: collections in argument
// order, elements in collection order.
func Consolidate(offices []models.Office, collections ...[]models.Asset) ([]Record, error) {
	index, err := IndexOffices(offices)
	if err != nil {
		return nil, err
	}

	size := 0
	for _, collection := range collections {
		size += len(collection)
	}

	records := make([]Record, 0, size)
	for _, collection := range collections {
		for _, asset := range collection {
			if err := validate(asset); err != nil {
				return nil, err
			}

			office, ok := index[asset.OfficeID]
			if !ok {
				return nil, &custom_error.DanglingOfficeReferenceError{AssetID: asset.ID, OfficeID: asset.OfficeID}
			}

			records = append(records, Record{Asset: asset, Office: office})
		}
	}

	return records, nil
}

func validate(asset models.Asset) error {
	if !asset.Brand.BelongsTo(asset.Kind) {
		return &custom_error.InvalidAssetError{
			AssetID: asset.ID,
			Reason:  fmt.Sprintf("brand %q is not a %s", asset.Brand, asset.Kind.DisplayName()),
		}
	}
	if asset.Price.IsNegative() {
		return &custom_error.InvalidAssetError{AssetID: asset.ID, Reason: "negative price " + asset.Price.String()}
	}
	return nil
}
