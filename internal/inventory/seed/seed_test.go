package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"assettracking/pkg/metadata"
	"assettracking/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOfficeStore struct {
	mock.Mock
}

func (m *MockOfficeStore) CountOffices(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOfficeStore) ListOffices(ctx context.Context) ([]models.Office, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Office), args.Error(1)
}

func (m *MockOfficeStore) PersistOffice(ctx context.Context, tx *goqu.TxDatabase, office *models.Office) error {
	args := m.Called(ctx, tx, office)
	return args.Error(0)
}

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) CountAssets(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAssetStore) PersistAsset(ctx context.Context, tx *goqu.TxDatabase, asset *models.Asset) error {
	args := m.Called(ctx, tx, asset)
	return args.Error(0)
}

var now = time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC)

func fakeTx() (TxRunner, *int) {
	calls := 0
	tx := &goqu.TxDatabase{}
	return func(ctx context.Context, fn func(tx *goqu.TxDatabase) error) error {
		calls++
		return fn(tx)
	}, &calls
}

var seededOffices = []models.Office{
	{ID: 1, Location: "New York", CurrencyCode: "USD"},
	{ID: 2, Location: "London", CurrencyCode: "GBP"},
	{ID: 3, Location: "Berlin", CurrencyCode: "EUR"},
}

func TestSeedEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	offices := new(MockOfficeStore)
	assets := new(MockAssetStore)
	runTx, calls := fakeTx()

	var persistedOffices []string
	offices.On("CountOffices", ctx).Return(0, nil).Once()
	offices.On("PersistOffice", ctx, mock.Anything, mock.AnythingOfType("*models.Office")).
		Run(func(args mock.Arguments) {
			persistedOffices = append(persistedOffices, args.Get(2).(*models.Office).Location)
		}).
		Return(nil).Times(3)
	offices.On("ListOffices", ctx).Return(seededOffices, nil).Once()

	var persistedAssets []models.Asset
	assets.On("CountAssets", ctx).Return(0, nil).Once()
	assets.On("PersistAsset", ctx, mock.Anything, mock.AnythingOfType("*models.Asset")).
		Run(func(args mock.Arguments) {
			persistedAssets = append(persistedAssets, *args.Get(2).(*models.Asset))
		}).
		Return(nil)

	err := NewSeeder(offices, assets, runTx, zap.NewNop()).Seed(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
	assert.Equal(t, []string{"New York", "London", "Berlin"}, persistedOffices)
	require.Len(t, persistedAssets, len(demoAssets))

	first := persistedAssets[0]
	assert.Equal(t, metadata.KindLaptop, first.Kind)
	assert.Equal(t, metadata.BrandMacBook, first.Brand)
	assert.Equal(t, 1, first.OfficeID)
	assert.Equal(t, now.AddDate(-1, 0, 0), first.PurchaseDate)

	for _, asset := range persistedAssets {
		assert.True(t, asset.Brand.BelongsTo(asset.Kind))
		assert.False(t, asset.PurchaseDate.After(now))
	}

	offices.AssertExpectations(t)
	assets.AssertExpectations(t)
}

func TestSeedSkipsPopulatedTables(t *testing.T) {
	ctx := context.Background()
	offices := new(MockOfficeStore)
	assets := new(MockAssetStore)
	runTx, calls := fakeTx()

	offices.On("CountOffices", ctx).Return(3, nil).Once()
	assets.On("CountAssets", ctx).Return(6, nil).Once()

	require.NoError(t, NewSeeder(offices, assets, runTx, zap.NewNop()).Seed(ctx, now))

	assert.Equal(t, 0, *calls)
	offices.AssertNotCalled(t, "PersistOffice", mock.Anything, mock.Anything, mock.Anything)
	assets.AssertNotCalled(t, "PersistAsset", mock.Anything, mock.Anything, mock.Anything)
}

func TestSeedFailsWhenOfficeMissing(t *testing.T) {
	ctx := context.Background()
	offices := new(MockOfficeStore)
	assets := new(MockAssetStore)
	runTx, _ := fakeTx()

	offices.On("CountOffices", ctx).Return(1, nil).Once()
	offices.On("ListOffices", ctx).Return(seededOffices[:1], nil).Once()
	assets.On("CountAssets", ctx).Return(0, nil).Once()
	assets.On("PersistAsset", ctx, mock.Anything, mock.Anything).Return(nil)

	err := NewSeeder(offices, assets, runTx, zap.NewNop()).Seed(ctx, now)

	assert.ErrorContains(t, err, "office London not found")
}

func TestSeedPropagatesPersistError(t *testing.T) {
	ctx := context.Background()
	offices := new(MockOfficeStore)
	assets := new(MockAssetStore)
	runTx, _ := fakeTx()

	failure := errors.New("insert failed")
	offices.On("CountOffices", ctx).Return(0, nil).Once()
	offices.On("PersistOffice", ctx, mock.Anything, mock.Anything).Return(failure).Once()

	err := NewSeeder(offices, assets, runTx, zap.NewNop()).Seed(ctx, now)

	assert.ErrorIs(t, err, failure)
	assets.AssertNotCalled(t, "CountAssets", mock.Anything)
}
