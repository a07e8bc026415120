package repository

import (
	"testing"

	"grillmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetSeedsDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackupRepository(db)
	require.NoError(t, repo.Reset())

	var categories []models.Category
	require.NoError(t, db.Find(&categories).Error)
	assert.Len(t, categories, 3)

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	assert.Len(t, products, 4)

	var restaurants []models.Restaurant
	require.NoError(t, db.Find(&restaurants).Error)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "GrillManager", restaurants[0].Name)
}

func TestResetIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackupRepository(db)

	require.NoError(t, db.Create(&models.Order{OrderID: "ORD-20260830-900", Status: "PENDING"}).Error)
	require.NoError(t, repo.Reset())
	require.NoError(t, repo.Reset())

	var orders []models.Order
	require.NoError(t, db.Find(&orders).Error)
	assert.Empty(t, orders)

	var categories []models.Category
	require.NoError(t, db.Find(&categories).Error)
	assert.Len(t, categories, 3)

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	assert.Len(t, products, 4)
}

func TestExportImportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackupRepository(db)

	require.NoError(t, db.Create(&models.Category{Name: "Hambúrgueres", Icon: "🍔"}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Hambúrguer Clássico", Price: 25.90, Category: "Hambúrgueres", Available: true}).Error)
	require.NoError(t, db.Create(&models.Order{OrderID: "ORD-20260830-111", Status: "DELIVERED", Totals: &models.Totals{Total: 25.90}}).Error)
	require.NoError(t, db.Create(&models.PromotionalSection{Title: "Destaques", Active: true}).Error)

	data, err := repo.Export()
	require.NoError(t, err)
	assert.False(t, data.ExportDate.IsZero())
	require.Len(t, data.Products, 1)
	require.Len(t, data.Orders, 1)

	// Imports replace everything, so importing an export is a no-op dataset-wise.
	require.NoError(t, repo.Import(data))

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	require.Len(t, products, 1)
	assert.Equal(t, "Hambúrguer Clássico", products[0].Name)

	var orders []models.Order
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-20260830-111", orders[0].OrderID)
	assert.Equal(t, 25.90, orders[0].Totals.Total)

	var sections []models.PromotionalSection
	require.NoError(t, db.Find(&sections).Error)
	require.Len(t, sections, 1)
	assert.Equal(t, "Destaques", sections[0].Title)
}

func TestImportReplacesExistingData(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackupRepository(db)
	require.NoError(t, repo.Reset())

	incoming := &BackupData{
		Categories: []models.Category{{Name: "Pizzas"}},
		Products:   []models.Product{{Name: "Margherita", Price: 39.90, Category: "Pizzas", Available: true}},
	}
	require.NoError(t, repo.Import(incoming))

	var categories []models.Category
	require.NoError(t, db.Find(&categories).Error)
	require.Len(t, categories, 1)
	assert.Equal(t, "Pizzas", categories[0].Name)

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	require.Len(t, products, 1)
	assert.False(t, products[0].CreatedAt.IsZero())
}

func TestImportGeneratesMissingOrderIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackupRepository(db)

	incoming := &BackupData{
		Orders: []models.Order{{Status: "PENDING"}},
	}
	require.NoError(t, repo.Import(incoming))

	var orders []models.Order
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.NotEmpty(t, orders[0].OrderID)
}
