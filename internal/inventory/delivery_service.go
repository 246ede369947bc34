package inventory

import (
	"fmt"
	"strings"
	"time"

	"serraria-backend/internal/database"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/logger"
	"serraria-backend/internal/models"
)

type CreateDeliveryInput struct {
	LicensePlate string
	DriverName   string
	SupplierID   *string
	WoodType     string
	Quantity     float64
	DeliveryDate time.Time
	Notes        string
}

func validateDelivery(d *models.TruckDelivery) error {
	d.LicensePlate = strings.TrimSpace(d.LicensePlate)
	d.DriverName = strings.TrimSpace(d.DriverName)
	d.WoodType = strings.TrimSpace(d.WoodType)
	if d.LicensePlate == "" {
		return ledger.Invalid("license_plate", "placa é obrigatória")
	}
	if d.DriverName == "" {
		return ledger.Invalid("driver_name", "motorista é obrigatório")
	}
	if d.WoodType == "" {
		return ledger.Invalid("wood_type", "tipo de madeira é obrigatório")
	}
	if d.Quantity < 0 {
		return ledger.Invalid("quantity", "não pode ser negativo")
	}
	if d.DeliveryDate.IsZero() {
		return ledger.Invalid("delivery_date", "data é obrigatória")
	}
	return nil
}

var deliveryStore = ledger.NewStore(validateDelivery)

// derivedStock: entrada de estoque espelhando a entrega. O vínculo é só por
// valor (tipo, quantidade, fornecedor, dia da entrega e a placa na
// observação); não existe chave de volta para a entrega e os dois registros
// seguem vidas separadas depois daqui.
func derivedStock(d *models.TruckDelivery) *models.WoodStock {
	return &models.WoodStock{
		WoodType:   d.WoodType,
		Quantity:   d.Quantity,
		SupplierID: d.SupplierID,
		EntryDate:  ledger.Day(d.DeliveryDate),
		Notes:      fmt.Sprintf("Recebido de caminhão: %s", d.LicensePlate),
		CreatedBy:  d.CreatedBy,
	}
}

// CreateDelivery: registra a entrega e a entrada de estoque derivada numa
// transação só — ou as duas entram ou nenhuma. Se o banco não conseguir
// abrir transação, cai para o modo sequencial degradado.
func CreateDelivery(userID string, in CreateDeliveryInput) (*models.TruckDelivery, error) {
	delivery := &models.TruckDelivery{
		LicensePlate: in.LicensePlate,
		DriverName:   in.DriverName,
		SupplierID:   in.SupplierID,
		WoodType:     in.WoodType,
		Quantity:     in.Quantity,
		DeliveryDate: in.DeliveryDate,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedBy:    userID,
	}
	if err := validateDelivery(delivery); err != nil {
		return nil, err
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		logger.L.Warn().Err(tx.Error).Msg("banco sem transação, gravando entrega em modo sequencial")
		return createDeliverySequential(delivery)
	}

	if err := tx.Create(delivery).Error; err != nil {
		tx.Rollback()
		return nil, &ledger.IOError{Op: "create delivery", Err: err}
	}
	if err := tx.Create(derivedStock(delivery)).Error; err != nil {
		tx.Rollback()
		return nil, &ledger.IOError{Op: "create derived stock", Err: err}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, &ledger.IOError{Op: "commit delivery", Err: err}
	}

	return delivery, nil
}

// createDeliverySequential: modo degradado, sem atomicidade. Se a entrada de
// estoque falhar depois da entrega já gravada, a entrega fica no banco e o
// chamador recebe o aviso de inconsistência para pedir a correção manual.
func createDeliverySequential(delivery *models.TruckDelivery) (*models.TruckDelivery, error) {
	if err := database.DB.Create(delivery).Error; err != nil {
		return nil, &ledger.IOError{Op: "create delivery", Err: err}
	}
	if err := database.DB.Create(derivedStock(delivery)).Error; err != nil {
		logger.L.Warn().Err(err).Str("delivery_id", delivery.ID).
			Msg("entrega gravada mas a entrada de estoque derivada falhou")
		return delivery, &ledger.PartialConsistencyWarning{DeliveryID: delivery.ID, Err: err}
	}
	return delivery, nil
}
