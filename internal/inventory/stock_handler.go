package inventory

import (
	"fmt"
	"strings"

	"serraria-backend/internal/audit"
	"serraria-backend/internal/auth"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StockEntryRequest struct {
	WoodType   string `json:"wood_type"`
	Quantity   string `json:"quantity"` // decimal como texto, ex: "10.5"
	SupplierID string `json:"supplier_id"`
	EntryDate  string `json:"entry_date"` // "2025-01-10"
	Notes      string `json:"notes"`
}

type StockEntryResponse struct {
	ID           string  `json:"id"`
	WoodType     string  `json:"wood_type"`
	Quantity     float64 `json:"quantity"`
	SupplierID   string  `json:"supplier_id,omitempty"`
	SupplierName string  `json:"supplier_name"`
	EntryDate    string  `json:"entry_date"`
	Notes        string  `json:"notes"`
	CreatedAt    string  `json:"created_at"`
}

func validateStockEntry(e *models.WoodStock) error {
	e.WoodType = strings.TrimSpace(e.WoodType)
	if e.WoodType == "" {
		return ledger.Invalid("wood_type", "tipo de madeira é obrigatório")
	}
	if e.Quantity < 0 {
		return ledger.Invalid("quantity", "não pode ser negativo")
	}
	if e.EntryDate.IsZero() {
		return ledger.Invalid("entry_date", "data é obrigatória")
	}
	return nil
}

var stockStore = ledger.NewStore(validateStockEntry)

func stockResponse(e *models.WoodStock, names map[string]string) StockEntryResponse {
	resp := StockEntryResponse{
		ID:           e.ID,
		WoodType:     e.WoodType,
		Quantity:     e.Quantity,
		SupplierName: ledger.SupplierLabel(names, e.SupplierID),
		EntryDate:    e.EntryDate.Format(ledger.DayFormat),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.SupplierID != nil {
		resp.SupplierID = *e.SupplierID
	}
	return resp
}

// supplierRef: id opcional do formulário → referência (string vazia = sem fornecedor)
func supplierRef(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// POST /api/stock-entries
func CreateStockEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		var body StockEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		quantity, err := ledger.ParseDecimal("quantity", body.Quantity)
		if err != nil {
			return err
		}
		entryDate, err := ledger.ParseDay("entry_date", body.EntryDate)
		if err != nil {
			return err
		}

		entry := models.WoodStock{
			WoodType:   body.WoodType,
			Quantity:   quantity,
			SupplierID: supplierRef(body.SupplierID),
			EntryDate:  entryDate,
			Notes:      strings.TrimSpace(body.Notes),
			CreatedBy:  userID,
		}

		if err := stockStore.Create(&entry); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "wood_stock",
			EntityID:    entry.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Entrada de estoque: %s - %.2f m³", entry.WoodType, entry.Quantity),
			After:       entry,
		})

		names, err := ledger.SupplierNames()
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(stockResponse(&entry, names))
	}
}

// GET /api/stock-entries
func ListStockEntriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := stockStore.List("created_at DESC")
		if err != nil {
			return err
		}

		names, err := ledger.SupplierNames()
		if err != nil {
			return err
		}

		resp := make([]StockEntryResponse, 0, len(entries))
		for i := range entries {
			resp = append(resp, stockResponse(&entries[i], names))
		}

		return c.JSON(resp)
	}
}

// PUT /api/stock-entries/:id
func UpdateStockEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		entry, err := stockStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		var body StockEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		quantity, err := ledger.ParseDecimal("quantity", body.Quantity)
		if err != nil {
			return err
		}
		entryDate, err := ledger.ParseDay("entry_date", body.EntryDate)
		if err != nil {
			return err
		}

		before := *entry

		entry.WoodType = body.WoodType
		entry.Quantity = quantity
		entry.SupplierID = supplierRef(body.SupplierID)
		entry.EntryDate = entryDate
		entry.Notes = strings.TrimSpace(body.Notes)

		if err := stockStore.Update(entry); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "wood_stock",
			EntityID:    entry.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Entrada de estoque atualizada: %s - %.2f m³", entry.WoodType, entry.Quantity),
			Before:      before,
			After:       entry,
		})

		names, err := ledger.SupplierNames()
		if err != nil {
			return err
		}
		return c.JSON(stockResponse(entry, names))
	}
}

// DELETE /api/stock-entries/:id
func DeleteStockEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		entry, err := stockStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		if err := stockStore.Delete(entry.ID); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "wood_stock",
			EntityID:    entry.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Entrada de estoque removida: %s - %.2f m³", entry.WoodType, entry.Quantity),
			Before:      entry,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
