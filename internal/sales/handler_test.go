package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"
)

func TestParseSaleRequestTotalAtWrite(t *testing.T) {
	sale, err := parseSaleRequest(&SaleRequest{
		BuyerName:     "Comprador X",
		ProductType:   "Palete 120x100",
		Quantity:      "4",
		UnitPrice:     "25.50",
		PaymentMethod: "pix",
		PaymentStatus: "paid",
		SaleDate:      "2025-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, sale.Quantity)
	assert.Equal(t, 25.5, sale.UnitPrice)
	assert.Equal(t, 102.0, sale.TotalAmount)
	assert.Equal(t, models.PaymentPix, sale.PaymentMethod)
	assert.Equal(t, models.PaymentPaid, sale.PaymentStatus)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), sale.SaleDate)
}

func TestParseSaleRequestDefaults(t *testing.T) {
	sale, err := parseSaleRequest(&SaleRequest{
		BuyerName:   "Comprador X",
		ProductType: "Palete",
		Quantity:    "1",
		UnitPrice:   "10",
		SaleDate:    "2025-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentCash, sale.PaymentMethod)
	assert.Equal(t, models.PaymentPending, sale.PaymentStatus)
}

func TestParseSaleRequestRejectsBadNumbers(t *testing.T) {
	var ve *ledger.ValidationError

	_, err := parseSaleRequest(&SaleRequest{
		BuyerName: "X", ProductType: "P", Quantity: "muitos",
		UnitPrice: "10", SaleDate: "2025-01-10",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity", ve.Field)

	_, err = parseSaleRequest(&SaleRequest{
		BuyerName: "X", ProductType: "P", Quantity: "1",
		UnitPrice: "-5", SaleDate: "2025-01-10",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "unit_price", ve.Field)
}

func TestValidateSale(t *testing.T) {
	base := models.Sale{
		BuyerName: "Comprador", ProductType: "Palete", Quantity: 1, UnitPrice: 10,
		PaymentMethod: models.PaymentPix, PaymentStatus: models.PaymentPending,
		SaleDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
	}
	require.NoError(t, validateSale(&base))

	var ve *ledger.ValidationError

	bad := base
	bad.BuyerName = "  "
	require.ErrorAs(t, validateSale(&bad), &ve)
	assert.Equal(t, "buyer_name", ve.Field)

	bad = base
	bad.PaymentMethod = "cheque"
	require.ErrorAs(t, validateSale(&bad), &ve)
	assert.Equal(t, "payment_method", ve.Field)

	bad = base
	bad.PaymentStatus = "cancelado"
	require.ErrorAs(t, validateSale(&bad), &ve)
	assert.Equal(t, "payment_status", ve.Field)
}
