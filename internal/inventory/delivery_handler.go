package inventory

import (
	"errors"
	"fmt"
	"strings"

	"serraria-backend/internal/audit"
	"serraria-backend/internal/auth"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DeliveryRequest struct {
	LicensePlate string `json:"license_plate"`
	DriverName   string `json:"driver_name"`
	SupplierID   string `json:"supplier_id"`
	WoodType     string `json:"wood_type"`
	Quantity     string `json:"quantity"`      // decimal como texto
	DeliveryDate string `json:"delivery_date"` // "2025-01-10T08:00"
	Notes        string `json:"notes"`
}

type DeliveryResponse struct {
	ID           string  `json:"id"`
	LicensePlate string  `json:"license_plate"`
	DriverName   string  `json:"driver_name"`
	SupplierID   string  `json:"supplier_id,omitempty"`
	SupplierName string  `json:"supplier_name"`
	WoodType     string  `json:"wood_type"`
	Quantity     float64 `json:"quantity"`
	DeliveryDate string  `json:"delivery_date"`
	Notes        string  `json:"notes"`
	CreatedAt    string  `json:"created_at"`
}

func deliveryResponse(d *models.TruckDelivery, names map[string]string) DeliveryResponse {
	resp := DeliveryResponse{
		ID:           d.ID,
		LicensePlate: d.LicensePlate,
		DriverName:   d.DriverName,
		SupplierName: ledger.SupplierLabel(names, d.SupplierID),
		WoodType:     d.WoodType,
		Quantity:     d.Quantity,
		DeliveryDate: d.DeliveryDate.Format(ledger.DayTimeFormat),
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if d.SupplierID != nil {
		resp.SupplierID = *d.SupplierID
	}
	return resp
}

func parseDeliveryRequest(body *DeliveryRequest) (CreateDeliveryInput, error) {
	quantity, err := ledger.ParseDecimal("quantity", body.Quantity)
	if err != nil {
		return CreateDeliveryInput{}, err
	}
	deliveryDate, err := ledger.ParseDayTime("delivery_date", body.DeliveryDate)
	if err != nil {
		return CreateDeliveryInput{}, err
	}
	return CreateDeliveryInput{
		LicensePlate: body.LicensePlate,
		DriverName:   body.DriverName,
		SupplierID:   supplierRef(body.SupplierID),
		WoodType:     body.WoodType,
		Quantity:     quantity,
		DeliveryDate: deliveryDate,
		Notes:        body.Notes,
	}, nil
}

// POST /api/deliveries
// Cria a entrega e a entrada de estoque derivada. No modo degradado (sem
// transação) a resposta ainda é 201, mas carrega o aviso de inconsistência.
func CreateDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		var body DeliveryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		input, err := parseDeliveryRequest(&body)
		if err != nil {
			return err
		}

		delivery, err := CreateDelivery(userID, input)

		var warning *ledger.PartialConsistencyWarning
		if err != nil {
			if !errors.As(err, &warning) {
				return err
			}
			// entrega gravada, estoque não: segue com aviso
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "truck_delivery",
			EntityID:    delivery.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Entrega registrada: %s - %s %.2f m³", delivery.LicensePlate, delivery.WoodType, delivery.Quantity),
			After:       delivery,
		})

		names, err := ledger.SupplierNames()
		if err != nil {
			return err
		}

		resp := fiber.Map{"delivery": deliveryResponse(delivery, names)}
		if warning != nil {
			resp["warning"] = "Entrega registrada, mas a atualização do estoque falhou. Confira o estoque manualmente."
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// GET /api/deliveries
func ListDeliveriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		deliveries, err := deliveryStore.List("delivery_date DESC")
		if err != nil {
			return err
		}

		names, err := ledger.SupplierNames()
		if err != nil {
			return err
		}

		resp := make([]DeliveryResponse, 0, len(deliveries))
		for i := range deliveries {
			resp = append(resp, deliveryResponse(&deliveries[i], names))
		}

		return c.JSON(resp)
	}
}

// PUT /api/deliveries/:id
// Editar uma entrega NÃO atualiza a entrada de estoque derivada; depois da
// criação os dois registros são independentes.
func UpdateDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		delivery, err := deliveryStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		var body DeliveryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		input, err := parseDeliveryRequest(&body)
		if err != nil {
			return err
		}

		before := *delivery

		delivery.LicensePlate = input.LicensePlate
		delivery.DriverName = input.DriverName
		delivery.SupplierID = input.SupplierID
		delivery.WoodType = input.WoodType
		delivery.Quantity = input.Quantity
		delivery.DeliveryDate = input.DeliveryDate
		delivery.Notes = strings.TrimSpace(input.Notes)

		if err := deliveryStore.Update(delivery); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "truck_delivery",
			EntityID:    delivery.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Entrega atualizada: %s", delivery.LicensePlate),
			Before:      before,
			After:       delivery,
		})

		names, err := ledger.SupplierNames()
		if err != nil {
			return err
		}
		return c.JSON(deliveryResponse(delivery, names))
	}
}

// DELETE /api/deliveries/:id
// Excluir a entrega não remove a entrada de estoque derivada.
func DeleteDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		delivery, err := deliveryStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		if err := deliveryStore.Delete(delivery.ID); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "truck_delivery",
			EntityID:    delivery.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Entrega removida: %s", delivery.LicensePlate),
			Before:      delivery,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
