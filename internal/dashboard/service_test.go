package dashboard

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"serraria-backend/internal/database"
	"serraria-backend/internal/models"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func TestTotalStock(t *testing.T) {
	entries := []models.WoodStock{
		{Quantity: 10.5},
		{Quantity: 4.5},
		{Quantity: 0},
	}
	assert.Equal(t, 15.0, TotalStock(entries))
	assert.Equal(t, 0.0, TotalStock(nil))
}

func TestPalletsProducedOn(t *testing.T) {
	today := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)
	runs := []models.PalletProduction{
		{Quantity: 120, ProductionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)},
		{Quantity: 30, ProductionDate: time.Date(2025, 1, 10, 23, 0, 0, 0, time.Local)},
		{Quantity: 999, ProductionDate: time.Date(2025, 1, 9, 23, 59, 0, 0, time.Local)},
	}
	assert.Equal(t, 150, PalletsProducedOn(runs, today))
}

func TestDeliveriesOnInclusiveBounds(t *testing.T) {
	today := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)
	deliveries := []models.TruckDelivery{
		{Quantity: 10, DeliveryDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)},
		{Quantity: 5, DeliveryDate: time.Date(2025, 1, 10, 23, 59, 59, 0, time.Local)},
		{Quantity: 99, DeliveryDate: time.Date(2025, 1, 11, 0, 0, 0, 0, time.Local)},
		{Quantity: 99, DeliveryDate: time.Date(2025, 1, 9, 23, 59, 59, 0, time.Local)},
	}

	count, volume := DeliveriesOn(deliveries, today)
	assert.Equal(t, 2, count)
	assert.Equal(t, 15.0, volume)
}

func TestMonthToDateSales(t *testing.T) {
	today := time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local)
	salesList := []models.Sale{
		{TotalAmount: 100, SaleDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)},
		{TotalAmount: 50, SaleDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)},
		{TotalAmount: 999, SaleDate: time.Date(2025, 1, 16, 0, 0, 0, 0, time.Local)},
		{TotalAmount: 999, SaleDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local)},
	}
	assert.Equal(t, 150.0, MonthToDateSales(salesList, today))
}

func TestComputeMetrics(t *testing.T) {
	setupDB(t)

	today := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)

	require.NoError(t, database.DB.Create(&models.WoodStock{
		WoodType: "Pinus", Quantity: 10.5, EntryDate: today,
	}).Error)
	require.NoError(t, database.DB.Create(&models.WoodStock{
		WoodType: "Eucalipto", Quantity: 4.5, EntryDate: today.AddDate(0, 0, -3),
	}).Error)
	require.NoError(t, database.DB.Create(&models.PalletProduction{
		Quantity: 120, PalletSize: models.PalletSize120x100, ProductionDate: today,
	}).Error)
	require.NoError(t, database.DB.Create(&models.TruckDelivery{
		LicensePlate: "ABC-1234", DriverName: "João", WoodType: "Pinus",
		Quantity: 10.5, DeliveryDate: today,
	}).Error)
	require.NoError(t, database.DB.Create(&models.Sale{
		BuyerName: "Comprador", ProductType: "Palete", Quantity: 4, UnitPrice: 25,
		TotalAmount: 100, PaymentMethod: models.PaymentPix,
		PaymentStatus: models.PaymentPaid, SaleDate: today,
	}).Error)

	m, err := ComputeMetrics(today)
	require.NoError(t, err)

	assert.Equal(t, 15.0, m.TotalStockM3)
	assert.Equal(t, 120, m.PalletsToday)
	assert.Equal(t, 1, m.DeliveriesToday)
	assert.Equal(t, 10.5, m.DeliveredTodayM3)
	assert.Equal(t, 100.0, m.MonthSales)
}
