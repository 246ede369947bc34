package inventory

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"serraria-backend/internal/database"
	"serraria-backend/internal/ledger"
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

func TestCreateDeliveryWritesDerivedStock(t *testing.T) {
	setupDB(t)

	supplier := &models.Supplier{Name: "Fornecedor A"}
	require.NoError(t, database.DB.Create(supplier).Error)

	arrival := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	delivery, err := CreateDelivery("operador-1", CreateDeliveryInput{
		LicensePlate: "ABC-1234",
		DriverName:   "João",
		SupplierID:   &supplier.ID,
		WoodType:     "Pinus",
		Quantity:     10.5,
		DeliveryDate: arrival,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, delivery.ID)

	var deliveries []models.TruckDelivery
	require.NoError(t, database.DB.Find(&deliveries).Error)
	require.Len(t, deliveries, 1)

	var stock []models.WoodStock
	require.NoError(t, database.DB.Find(&stock).Error)
	require.Len(t, stock, 1)

	entry := stock[0]
	assert.Equal(t, "Pinus", entry.WoodType)
	assert.Equal(t, 10.5, entry.Quantity)
	require.NotNil(t, entry.SupplierID)
	assert.Equal(t, supplier.ID, *entry.SupplierID)
	assert.True(t, ledger.SameDay(arrival, entry.EntryDate))
	assert.Equal(t, 0, entry.EntryDate.Hour())
	assert.Contains(t, entry.Notes, "ABC-1234")
	assert.Equal(t, "operador-1", entry.CreatedBy)
}

func TestCreateDeliveryInvalidPersistsNothing(t *testing.T) {
	setupDB(t)

	_, err := CreateDelivery("operador-1", CreateDeliveryInput{
		DriverName:   "João",
		WoodType:     "Pinus",
		Quantity:     10.5,
		DeliveryDate: time.Now(),
	})

	var ve *ledger.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "license_plate", ve.Field)

	var deliveries []models.TruckDelivery
	require.NoError(t, database.DB.Find(&deliveries).Error)
	assert.Empty(t, deliveries)

	var stock []models.WoodStock
	require.NoError(t, database.DB.Find(&stock).Error)
	assert.Empty(t, stock)
}

// Editar ou excluir a entrega não pode mexer na entrada de estoque derivada.
func TestDeliveryEditAndDeleteLeaveStockAlone(t *testing.T) {
	setupDB(t)

	arrival := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)
	delivery, err := CreateDelivery("operador-1", CreateDeliveryInput{
		LicensePlate: "ABC-1234",
		DriverName:   "João",
		WoodType:     "Pinus",
		Quantity:     10.5,
		DeliveryDate: arrival,
	})
	require.NoError(t, err)

	delivery.Quantity = 99
	require.NoError(t, deliveryStore.Update(delivery))

	var stock []models.WoodStock
	require.NoError(t, database.DB.Find(&stock).Error)
	require.Len(t, stock, 1)
	assert.Equal(t, 10.5, stock[0].Quantity)

	require.NoError(t, deliveryStore.Delete(delivery.ID))

	require.NoError(t, database.DB.Find(&stock).Error)
	require.Len(t, stock, 1)
	assert.Equal(t, 10.5, stock[0].Quantity)
}

func TestCreateDeliverySequentialWarnsOnStockFailure(t *testing.T) {
	setupDB(t)

	// Sem a tabela de estoque a segunda gravação falha depois da primeira.
	require.NoError(t, database.DB.Migrator().DropTable(&models.WoodStock{}))

	delivery := &models.TruckDelivery{
		LicensePlate: "ABC-1234",
		DriverName:   "João",
		WoodType:     "Pinus",
		Quantity:     10.5,
		DeliveryDate: time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local),
		CreatedBy:    "operador-1",
	}
	got, err := createDeliverySequential(delivery)

	var warning *ledger.PartialConsistencyWarning
	require.ErrorAs(t, err, &warning)
	assert.Equal(t, delivery.ID, warning.DeliveryID)
	require.NotNil(t, got)

	var deliveries []models.TruckDelivery
	require.NoError(t, database.DB.Find(&deliveries).Error)
	assert.Len(t, deliveries, 1)
}
