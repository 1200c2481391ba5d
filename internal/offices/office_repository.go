package offices

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assettracking/internal/repository"
	custom_error "assettracking/pkg/errors"
	"assettracking/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type OfficeRepository struct {
	Repository *repository.Repository
}

func NewOfficeRepository(r *repository.Repository) *OfficeRepository {
	return &OfficeRepository{Repository: r}
}

func (r *OfficeRepository) ListOffices(ctx context.Context) ([]models.Office, error) {
	offices := []models.Office{}
	query := r.Repository.GoquDBWrapper.
		Select("id", "location", "currency_code").
		From("offices").
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructsContext(ctx, &offices); err != nil {
		return nil, custom_error.NewStorageUnavailable("list offices", err)
	}

	return offices, nil
}

func (r *OfficeRepository) CountOffices(ctx context.Context) (int, error) {
	var count int
	query := r.Repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("offices")

	if _, err := query.Executor().ScanValContext(ctx, &count); err != nil {
		return 0, custom_error.NewStorageUnavailable("count offices", err)
	}

	return count, nil
}

func (r *OfficeRepository) PersistOffice(ctx context.Context, tx *goqu.TxDatabase, office *models.Office) error {
	if tx == nil {
		return fmt.Errorf("transaction is required for PersistOffice")
	}
	if strings.TrimSpace(office.Location) == "" {
		return fmt.Errorf("office location must not be empty")
	}
	if len(office.CurrencyCode) != 3 {
		return fmt.Errorf("invalid currency code %q for office %s", office.CurrencyCode, office.Location)
	}

	query := tx.Insert("offices").
		Rows(goqu.Record{
			"location":      office.Location,
			"currency_code": office.CurrencyCode,
		}).
		Returning("id")

	if _, err := query.Executor().ScanValContext(ctx, &office.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return custom_error.WrapDBError("office "+office.Location, string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert office record: %w", err)
	}

	return nil
}
