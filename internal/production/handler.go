package production

import (
	"fmt"
	"strings"

	"serraria-backend/internal/audit"
	"serraria-backend/internal/auth"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductionRequest struct {
	Quantity       string `json:"quantity"` // paletes, inteiro como texto
	PalletSize     string `json:"pallet_size"`
	WoodConsumed   string `json:"wood_consumed"` // m³, decimal como texto
	OperatorName   string `json:"operator_name"`
	ProductionDate string `json:"production_date"` // "2025-01-10"
	Notes          string `json:"notes"`
}

type ProductionResponse struct {
	ID             string  `json:"id"`
	Quantity       int     `json:"quantity"`
	PalletSize     string  `json:"pallet_size"`
	WoodConsumed   float64 `json:"wood_consumed"`
	OperatorName   string  `json:"operator_name"`
	ProductionDate string  `json:"production_date"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"created_at"`
}

func validateProduction(p *models.PalletProduction) error {
	if p.Quantity < 0 {
		return ledger.Invalid("quantity", "não pode ser negativo")
	}
	if !p.PalletSize.Valid() {
		return ledger.Invalid("pallet_size", "tamanho deve ser 120x100, 120x80, 100x100 ou Outro")
	}
	if p.WoodConsumed < 0 {
		return ledger.Invalid("wood_consumed", "não pode ser negativo")
	}
	if p.ProductionDate.IsZero() {
		return ledger.Invalid("production_date", "data é obrigatória")
	}
	return nil
}

var productionStore = ledger.NewStore(validateProduction)

func productionResponse(p *models.PalletProduction) ProductionResponse {
	return ProductionResponse{
		ID:             p.ID,
		Quantity:       p.Quantity,
		PalletSize:     string(p.PalletSize),
		WoodConsumed:   p.WoodConsumed,
		OperatorName:   p.OperatorName,
		ProductionDate: p.ProductionDate.Format(ledger.DayFormat),
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func parseProductionRequest(body *ProductionRequest) (*models.PalletProduction, error) {
	quantity, err := ledger.ParseCount("quantity", body.Quantity)
	if err != nil {
		return nil, err
	}
	woodConsumed, err := ledger.ParseDecimal("wood_consumed", body.WoodConsumed)
	if err != nil {
		return nil, err
	}
	productionDate, err := ledger.ParseDay("production_date", body.ProductionDate)
	if err != nil {
		return nil, err
	}
	return &models.PalletProduction{
		Quantity:       quantity,
		PalletSize:     models.PalletSize(strings.TrimSpace(body.PalletSize)),
		WoodConsumed:   woodConsumed,
		OperatorName:   strings.TrimSpace(body.OperatorName),
		ProductionDate: productionDate,
		Notes:          strings.TrimSpace(body.Notes),
	}, nil
}

// POST /api/production-runs
// A madeira consumida não abate do estoque: o total de estoque só cresce,
// comportamento herdado do sistema antigo.
func CreateProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		var body ProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		run, err := parseProductionRequest(&body)
		if err != nil {
			return err
		}
		run.CreatedBy = userID

		if err := productionStore.Create(run); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "pallet_production",
			EntityID:    run.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Produção registrada: %d paletes %s", run.Quantity, run.PalletSize),
			After:       run,
		})

		return c.Status(fiber.StatusCreated).JSON(productionResponse(run))
	}
}

// GET /api/production-runs
func ListProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		runs, err := productionStore.List("production_date DESC")
		if err != nil {
			return err
		}

		resp := make([]ProductionResponse, 0, len(runs))
		for i := range runs {
			resp = append(resp, productionResponse(&runs[i]))
		}

		return c.JSON(resp)
	}
}

// PUT /api/production-runs/:id
func UpdateProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		run, err := productionStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		var body ProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		parsed, err := parseProductionRequest(&body)
		if err != nil {
			return err
		}

		before := *run

		run.Quantity = parsed.Quantity
		run.PalletSize = parsed.PalletSize
		run.WoodConsumed = parsed.WoodConsumed
		run.OperatorName = parsed.OperatorName
		run.ProductionDate = parsed.ProductionDate
		run.Notes = parsed.Notes

		if err := productionStore.Update(run); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "pallet_production",
			EntityID:    run.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Produção atualizada: %d paletes %s", run.Quantity, run.PalletSize),
			Before:      before,
			After:       run,
		})

		return c.JSON(productionResponse(run))
	}
}

// DELETE /api/production-runs/:id
func DeleteProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		run, err := productionStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		if err := productionStore.Delete(run.ID); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "pallet_production",
			EntityID:    run.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Produção removida: %d paletes %s", run.Quantity, run.PalletSize),
			Before:      run,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
