package container

import (
	"context"
	"database/sql"
	"fmt"

	"assettracking/internal/config"
	"assettracking/internal/inventory/assets"
	"assettracking/internal/inventory/seed"
	"assettracking/internal/lifecycle"
	"assettracking/internal/offices"
	"assettracking/internal/report"
	"assettracking/internal/repository"
	"assettracking/pkg/currency"
	"assettracking/pkg/metadata"
	"assettracking/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

type Container struct {
	DB               *sql.DB
	Logger           *zap.Logger
	Repository       *repository.Repository
	OfficeRepository *offices.OfficeRepository
	AssetsRepository *assets.AssetsRepository
	ReportService    *report.Service
	Seeder           *seed.Seeder
	OfficeHandler    *offices.OfficeHandler
	AssetHandler     *assets.AssetHandler
	ReportHandler    *report.ReportHandler
}

// storage joins the two repositories into the snapshot source of a report.
type storage struct {
	offices *offices.OfficeRepository
	assets  *assets.AssetsRepository
}

func (s storage) ListOffices(ctx context.Context) ([]models.Office, error) {
	return s.offices.ListOffices(ctx)
}

func (s storage) ListAssetsByKind(ctx context.Context, kind metadata.Kind) ([]models.Asset, error) {
	return s.assets.ListAssetsByKind(ctx, kind)
}

func NewAppContainer(db *sql.DB, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	converter, err := currency.NewConverter(cfg.Rates)
	if err != nil {
		return nil, fmt.Errorf("currency converter: %w", err)
	}

	repo := repository.NewRepository(db)
	officeRepo := offices.NewOfficeRepository(repo)
	assetsRepo := assets.NewRepository(repo)

	builder := report.NewBuilder(converter, lifecycle.NewEvaluator(cfg.LifespanDays), cfg.BaseCurrency)
	reportService := report.NewService(storage{offices: officeRepo, assets: assetsRepo}, builder, logger)

	runTx := func(ctx context.Context, fn func(tx *goqu.TxDatabase) error) error {
		return repository.WithTransaction(ctx, repo.GoquDBWrapper, fn)
	}

	return &Container{
		DB:               db,
		Logger:           logger,
		Repository:       repo,
		OfficeRepository: officeRepo,
		AssetsRepository: assetsRepo,
		ReportService:    reportService,
		Seeder:           seed.NewSeeder(officeRepo, assetsRepo, runTx, logger),
		OfficeHandler:    offices.NewOfficeHandler(officeRepo),
		AssetHandler:     assets.NewAssetHandler(assetsRepo),
		ReportHandler:    report.NewReportHandler(reportService, logger),
	}, nil
}
