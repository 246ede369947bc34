package ledger

import (
	"testing"

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

func validateSupplier(s *models.Supplier) error {
	if s.Name == "" {
		return Invalid("name", "nome é obrigatório")
	}
	return nil
}

func TestStoreCRUD(t *testing.T) {
	setupDB(t)
	store := NewStore(validateSupplier)

	supplier := &models.Supplier{Name: "Fornecedor A", Phone: "11 99999-0000"}
	require.NoError(t, store.Create(supplier))
	assert.NotEmpty(t, supplier.ID)

	got, err := store.Get(supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fornecedor A", got.Name)

	got.Phone = "11 98888-0000"
	require.NoError(t, store.Update(got))

	again, err := store.Get(supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, "11 98888-0000", again.Phone)

	require.NoError(t, store.Delete(supplier.ID))

	_, err = store.Get(supplier.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreGetMissing(t *testing.T) {
	setupDB(t)
	store := NewStore(validateSupplier)

	_, err := store.Get("nao-existe")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete("nao-existe")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCreateInvalidPersistsNothing(t *testing.T) {
	setupDB(t)
	store := NewStore(validateSupplier)

	err := store.Create(&models.Supplier{Name: ""})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	list, err := store.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStoreListOrder(t *testing.T) {
	setupDB(t)
	store := NewStore(validateSupplier)

	require.NoError(t, store.Create(&models.Supplier{Name: "Madeireira Sul"}))
	require.NoError(t, store.Create(&models.Supplier{Name: "Fornecedor A"}))

	list, err := store.List("name ASC")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Fornecedor A", list[0].Name)
	assert.Equal(t, "Madeireira Sul", list[1].Name)
}

func TestSupplierNamesDangling(t *testing.T) {
	setupDB(t)
	store := NewStore(validateSupplier)

	supplier := &models.Supplier{Name: "Fornecedor A"}
	require.NoError(t, store.Create(supplier))

	names, err := SupplierNames()
	require.NoError(t, err)
	assert.Equal(t, "Fornecedor A", SupplierLabel(names, &supplier.ID))

	require.NoError(t, store.Delete(supplier.ID))

	names, err = SupplierNames()
	require.NoError(t, err)
	assert.Equal(t, "-", SupplierLabel(names, &supplier.ID))
}
