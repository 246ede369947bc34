package reports

import (
	"errors"
	"fmt"

	"serraria-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

// GET /api/reports/:kind
func DownloadReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := BuildReport(c.Params("kind"))
		if err != nil {
			if errors.Is(err, ledger.ErrNoData) {
				// sem dados o cliente mostra o aviso, não baixa arquivo vazio
				return fiber.NewError(fiber.StatusNotFound, "Não há dados para gerar o relatório")
			}
			return err
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, report.Filename))
		return c.SendString(report.CSV())
	}
}
