package sales

import (
	"fmt"
	"strings"

	"serraria-backend/internal/audit"
	"serraria-backend/internal/auth"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SaleRequest struct {
	BuyerName     string `json:"buyer_name"`
	BuyerContact  string `json:"buyer_contact"`
	ProductType   string `json:"product_type"`
	Quantity      string `json:"quantity"`   // inteiro como texto
	UnitPrice     string `json:"unit_price"` // decimal como texto
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	SaleDate      string `json:"sale_date"` // "2025-01-10"
	Notes         string `json:"notes"`
}

type SaleResponse struct {
	ID            string  `json:"id"`
	BuyerName     string  `json:"buyer_name"`
	BuyerContact  string  `json:"buyer_contact"`
	ProductType   string  `json:"product_type"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	SaleDate      string  `json:"sale_date"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"created_at"`
}

func validateSale(s *models.Sale) error {
	s.BuyerName = strings.TrimSpace(s.BuyerName)
	s.ProductType = strings.TrimSpace(s.ProductType)
	if s.BuyerName == "" {
		return ledger.Invalid("buyer_name", "comprador é obrigatório")
	}
	if s.ProductType == "" {
		return ledger.Invalid("product_type", "tipo de produto é obrigatório")
	}
	if s.Quantity < 0 {
		return ledger.Invalid("quantity", "não pode ser negativo")
	}
	if s.UnitPrice < 0 {
		return ledger.Invalid("unit_price", "não pode ser negativo")
	}
	if !s.PaymentMethod.Valid() {
		return ledger.Invalid("payment_method", "forma de pagamento inválida")
	}
	if !s.PaymentStatus.Valid() {
		return ledger.Invalid("payment_status", "status deve ser 'pending' ou 'paid'")
	}
	if s.SaleDate.IsZero() {
		return ledger.Invalid("sale_date", "data é obrigatória")
	}
	return nil
}

var saleStore = ledger.NewStore(validateSale)

func saleResponse(s *models.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		BuyerName:     s.BuyerName,
		BuyerContact:  s.BuyerContact,
		ProductType:   s.ProductType,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: string(s.PaymentMethod),
		PaymentStatus: string(s.PaymentStatus),
		SaleDate:      s.SaleDate.Format(ledger.DayFormat),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func parseSaleRequest(body *SaleRequest) (*models.Sale, error) {
	quantity, err := ledger.ParseCount("quantity", body.Quantity)
	if err != nil {
		return nil, err
	}
	unitPrice, err := ledger.ParseDecimal("unit_price", body.UnitPrice)
	if err != nil {
		return nil, err
	}
	saleDate, err := ledger.ParseDay("sale_date", body.SaleDate)
	if err != nil {
		return nil, err
	}

	method := models.PaymentMethod(strings.TrimSpace(body.PaymentMethod))
	if method == "" {
		method = models.PaymentCash
	}
	status := models.PaymentStatus(strings.TrimSpace(body.PaymentStatus))
	if status == "" {
		status = models.PaymentPending
	}

	return &models.Sale{
		BuyerName:    body.BuyerName,
		BuyerContact: strings.TrimSpace(body.BuyerContact),
		ProductType:  body.ProductType,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		// calculado na escrita e gravado; a leitura nunca recalcula
		TotalAmount:   float64(quantity) * unitPrice,
		PaymentMethod: method,
		PaymentStatus: status,
		SaleDate:      saleDate,
		Notes:         strings.TrimSpace(body.Notes),
	}, nil
}

// POST /api/sales
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		var body SaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		sale, err := parseSaleRequest(&body)
		if err != nil {
			return err
		}
		sale.CreatedBy = userID

		if err := saleStore.Create(sale); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "sale",
			EntityID:    sale.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Venda registrada: %s - R$ %.2f", sale.BuyerName, sale.TotalAmount),
			After:       sale,
		})

		return c.Status(fiber.StatusCreated).JSON(saleResponse(sale))
	}
}

// GET /api/sales
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		salesList, err := saleStore.List("sale_date DESC")
		if err != nil {
			return err
		}

		resp := make([]SaleResponse, 0, len(salesList))
		for i := range salesList {
			resp = append(resp, saleResponse(&salesList[i]))
		}

		return c.JSON(resp)
	}
}

// PUT /api/sales/:id
func UpdateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		sale, err := saleStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		var body SaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		parsed, err := parseSaleRequest(&body)
		if err != nil {
			return err
		}

		before := *sale

		sale.BuyerName = parsed.BuyerName
		sale.BuyerContact = parsed.BuyerContact
		sale.ProductType = parsed.ProductType
		sale.Quantity = parsed.Quantity
		sale.UnitPrice = parsed.UnitPrice
		sale.TotalAmount = parsed.TotalAmount
		sale.PaymentMethod = parsed.PaymentMethod
		sale.PaymentStatus = parsed.PaymentStatus
		sale.SaleDate = parsed.SaleDate
		sale.Notes = parsed.Notes

		if err := saleStore.Update(sale); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "sale",
			EntityID:    sale.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Venda atualizada: %s - R$ %.2f", sale.BuyerName, sale.TotalAmount),
			Before:      before,
			After:       sale,
		})

		return c.JSON(saleResponse(sale))
	}
}

// DELETE /api/sales/:id
func DeleteSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.Identity(c)
		if err != nil {
			return err
		}

		sale, err := saleStore.Get(c.Params("id"))
		if err != nil {
			return err
		}

		if err := saleStore.Delete(sale.ID); err != nil {
			return err
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "sale",
			EntityID:    sale.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Venda removida: %s - R$ %.2f", sale.BuyerName, sale.TotalAmount),
			Before:      sale,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
