package assets

import (
	"context"
	"errors"
	"fmt"

	"assettracking/internal/repository"
	custom_error "assettracking/pkg/errors"
	"assettracking/pkg/metadata"
	"assettracking/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type AssetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssetsRepository {
	return &AssetsRepository{
		repository: r,
	}
}

func (r *AssetsRepository) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return r.fetchAssets(ctx, "list assets", r.getAssetQuery())
}

func (r *AssetsRepository) ListAssetsByKind(ctx context.Context, kind metadata.Kind) ([]models.Asset, error) {
	query := r.getAssetQuery().Where(goqu.Ex{"a.kind": string(kind)})
	return r.fetchAssets(ctx, "list "+kind.String()+" assets", query)
}

func (r *AssetsRepository) CountAssets(ctx context.Context) (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("assets")

	if _, err := query.Executor().ScanValContext(ctx, &count); err != nil {
		return 0, custom_error.NewStorageUnavailable("count assets", err)
	}

	return count, nil
}

func (r *AssetsRepository) PersistAsset(ctx context.Context, tx *goqu.TxDatabase, asset *models.Asset) error {
	if tx == nil {
		return fmt.Errorf("transaction is required for PersistAsset")
	}
	if !asset.Brand.BelongsTo(asset.Kind) {
		return fmt.Errorf("brand %s does not belong to kind %s", asset.Brand, asset.Kind)
	}
	if asset.Price.IsNegative() {
		return fmt.Errorf("asset price must not be negative, got %s", asset.Price)
	}

	query := tx.Insert("assets").
		Rows(goqu.Record{
			"kind":          string(asset.Kind),
			"brand":         string(asset.Brand),
			"model_name":    asset.ModelName,
			"purchase_date": asset.PurchaseDate,
			"price":         asset.Price.StringFixed(2),
			"office_id":     asset.OfficeID,
		}).
		Returning("id")

	if _, err := query.Executor().ScanValContext(ctx, &asset.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return custom_error.WrapDBError(fmt.Sprintf("asset %s in office %d", asset.ModelName, asset.OfficeID), string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert asset record: %w", err)
	}

	return nil
}

func (r *AssetsRepository) fetchAssets(ctx context.Context, op string, query *goqu.SelectDataset) ([]models.Asset, error) {
	rows, err := query.Executor().QueryContext(ctx)
	if err != nil {
		return nil, custom_error.NewStorageUnavailable(op, err)
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		var flat models.FlatAssetRecord
		if err := rows.Scan(
			&flat.ID,
			&flat.Kind,
			&flat.Brand,
			&flat.ModelName,
			&flat.PurchaseDate,
			&flat.Price,
			&flat.OfficeID,
		); err != nil {
			return nil, custom_error.NewStorageUnavailable(op, fmt.Errorf("unable fetch data: %w", err))
		}

		asset, err := flat.TransformToAsset()
		if err != nil {
			return nil, &custom_error.InvalidAssetError{AssetID: flat.ID, Reason: err.Error()}
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, custom_error.NewStorageUnavailable(op, err)
	}

	return assets, nil
}

func (r *AssetsRepository) getAssetQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		Select(
			"a.id",
			"a.kind",
			"a.brand",
			"a.model_name",
			"a.purchase_date",
			"a.price",
			"a.office_id",
		).
		From(goqu.T("assets").As("a")).
		Order(goqu.I("a.id").Asc())
}
