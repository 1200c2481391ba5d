package report

import (
	"context"
	"fmt"
	"time"

	"assettracking/internal/catalog"
	"assettracking/pkg/metadata"
	"assettracking/pkg/models"

	"go.uber.org/zap"
)

// Storage supplies the snapshot a report is built from.
type Storage interface {
	ListOffices(ctx context.Context) ([]models.Office, error)
	ListAssetsByKind(ctx context.Context, kind metadata.Kind) ([]models.Asset, error)
}

type Sink interface {
	Render(report *Report) error
}

type Report struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	BaseCurrency string        `json:"base_currency"`
	LifespanDays int           `json:"lifespan_days"`
	Rows         []Row         `json:"rows"`
	Totals       []OfficeTotal `json:"totals"`
}

type Service struct {
	storage Storage
	builder *Builder
	logger  *zap.Logger
}

func NewService(storage Storage, builder *Builder, logger *zap.Logger) *Service {
	return &Service{
		storage: storage,
		builder: builder,
		logger:  logger,
	}
}

// Generate reads a fresh snapshot and builds the report as of now. Storage
// errors are returned unchanged.
func (s *Service) Generate(ctx context.Context, now time.Time) (*Report, error) {
	offices, err := s.storage.ListOffices(ctx)
	if err != nil {
		return nil, err
	}

	kinds := metadata.Kinds()
	collections := make([][]models.Asset, 0, len(kinds))
	for _, kind := range kinds {
		assets, err := s.storage.ListAssetsByKind(ctx, kind)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Fetched assets", zap.String("kind", kind.String()), zap.Int("count", len(assets)))
		collections = append(collections, assets)
	}

	records, err := catalog.Consolidate(offices, collections...)
	if err != nil {
		return nil, fmt.Errorf("consolidate assets: %w", err)
	}

	rows, err := s.builder.Build(records, now)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	s.logger.Info("Report generated",
		zap.Int("offices", len(offices)),
		zap.Int("rows", len(rows)),
		zap.Time("at", now),
	)

	return &Report{
		GeneratedAt:  now,
		BaseCurrency: s.builder.baseCurrency,
		LifespanDays: s.builder.evaluator.LifespanDays(),
		Rows:         rows,
		Totals:       Summarize(rows),
	}, nil
}

func (s *Service) Publish(ctx context.Context, now time.Time, sink Sink) error {
	report, err := s.Generate(ctx, now)
	if err != nil {
		return err
	}

	if err := sink.Render(report); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	return nil
}
