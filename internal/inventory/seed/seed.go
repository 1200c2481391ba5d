package seed

import (
	"context"
	"fmt"
	"time"

	"assettracking/pkg/metadata"
	"assettracking/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OfficeStore interface {
	CountOffices(ctx context.Context) (int, error)
	ListOffices(ctx context.Context) ([]models.Office, error)
	PersistOffice(ctx context.Context, tx *goqu.TxDatabase, office *models.Office) error
}

type AssetStore interface {
	CountAssets(ctx context.Context) (int, error)
	PersistAsset(ctx context.Context, tx *goqu.TxDatabase, asset *models.Asset) error
}

// TxRunner runs fn inside a single database transaction.
type TxRunner func(ctx context.Context, fn func(tx *goqu.TxDatabase) error) error

type demoAsset struct {
	brand     metadata.Brand
	modelName string
	age       func(now time.Time) time.Time
	price     int64
	location  string
}

var demoOffices = []models.Office{
	{Location: "New York", CurrencyCode: "USD"},
	{Location: "London", CurrencyCode: "GBP"},
	{Location: "Berlin", CurrencyCode: "EUR"},
}

var demoAssets = []demoAsset{
	{metadata.BrandMacBook, "MacBook Pro", yearsAgo(1), 1500, "New York"},
	{metadata.BrandLenovo, "ThinkPad X1", yearsAgo(2), 1000, "London"},
	{metadata.BrandIphone, "iPhone 12", yearsAgo(3), 800, "Berlin"},
	{metadata.BrandAsus, "ZenBook 14", monthsAgo(32), 1100, "Berlin"},
	{metadata.BrandSamsung, "Galaxy S21", monthsAgo(30), 900, "London"},
	{metadata.BrandNokia, "G21", monthsAgo(6), 199, "New York"},
}

func yearsAgo(n int) func(time.Time) time.Time {
	return func(now time.Time) time.Time { return now.AddDate(-n, 0, 0) }
}

func monthsAgo(n int) func(time.Time) time.Time {
	return func(now time.Time) time.Time { return now.AddDate(0, -n, 0) }
}

type Seeder struct {
	offices OfficeStore
	assets  AssetStore
	runTx   TxRunner
	logger  *zap.Logger
}

func NewSeeder(offices OfficeStore, assets AssetStore, runTx TxRunner, logger *zap.Logger) *Seeder {
	return &Seeder{
		offices: offices,
		assets:  assets,
		runTx:   runTx,
		logger:  logger,
	}
}

// Seed inserts the demo offices and assets. Each table is only seeded when it
// is empty, so running it twice is a no-op.
func (s *Seeder) Seed(ctx context.Context, now time.Time) error {
	if err := s.seedOffices(ctx); err != nil {
		return err
	}
	return s.seedAssets(ctx, now)
}

func (s *Seeder) seedOffices(ctx context.Context) error {
	count, err := s.offices.CountOffices(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Offices already present, skipping", zap.Int("count", count))
		return nil
	}

	err = s.runTx(ctx, func(tx *goqu.TxDatabase) error {
		for _, demo := range demoOffices {
			office := demo
			if err := s.offices.PersistOffice(ctx, tx, &office); err != nil {
				return fmt.Errorf("seed office %s: %w", office.Location, err)
			}
			s.logger.Debug("Seeded office", zap.Int("id", office.ID), zap.String("location", office.Location))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Seeded offices", zap.Int("count", len(demoOffices)))
	return nil
}

func (s *Seeder) seedAssets(ctx context.Context, now time.Time) error {
	count, err := s.assets.CountAssets(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Assets already present, skipping", zap.Int("count", count))
		return nil
	}

	offices, err := s.offices.ListOffices(ctx)
	if err != nil {
		return err
	}
	byLocation := make(map[string]int, len(offices))
	for _, office := range offices {
		byLocation[office.Location] = office.ID
	}

	err = s.runTx(ctx, func(tx *goqu.TxDatabase) error {
		for _, demo := range demoAssets {
			officeID, ok := byLocation[demo.location]
			if !ok {
				return fmt.Errorf("seed asset %s: office %s not found", demo.modelName, demo.location)
			}

			asset := models.Asset{
				Kind:         demo.brand.Kind(),
				Brand:        demo.brand,
				ModelName:    demo.modelName,
				PurchaseDate: demo.age(now),
				Price:        decimal.NewFromInt(demo.price),
				OfficeID:     officeID,
			}
			if err := s.assets.PersistAsset(ctx, tx, &asset); err != nil {
				return fmt.Errorf("seed asset %s: %w", asset.ModelName, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Seeded assets", zap.Int("count", len(demoAssets)))
	return nil
}
