package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/cart-backend/pkg/db/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Option{}))
	require.NoError(t, db.Create(&models.Product{ID: 1, ProductName: "P1", Price: 10000}).Error)
	require.NoError(t, db.Create(&models.Option{ID: 2, ProductID: 1, OptionName: "opt2", Price: 10900}).Error)
	return db
}

func TestFindOptionLoadsProduct(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	option, err := repo.FindOption(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "opt2", option.OptionName)
	assert.Equal(t, int64(10900), option.Price)
	require.NotNil(t, option.Product)
	assert.Equal(t, "P1", option.Product.ProductName)
}

func TestFindOptionMissing(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	_, err := repo.FindOption(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
