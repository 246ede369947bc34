package production

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"
)

func TestParseProductionRequest(t *testing.T) {
	run, err := parseProductionRequest(&ProductionRequest{
		Quantity:       "120",
		PalletSize:     "120x100",
		WoodConsumed:   "2.4",
		OperatorName:   " Carlos ",
		ProductionDate: "2025-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 120, run.Quantity)
	assert.Equal(t, models.PalletSize120x100, run.PalletSize)
	assert.Equal(t, 2.4, run.WoodConsumed)
	assert.Equal(t, "Carlos", run.OperatorName)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), run.ProductionDate)
}

func TestValidateProductionRejectsUnknownSize(t *testing.T) {
	run := &models.PalletProduction{
		Quantity:       10,
		PalletSize:     "90x90",
		ProductionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
	}

	var ve *ledger.ValidationError
	require.ErrorAs(t, validateProduction(run), &ve)
	assert.Equal(t, "pallet_size", ve.Field)

	run.PalletSize = models.PalletSizeOther
	assert.NoError(t, validateProduction(run))
}
