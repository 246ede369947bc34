package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"serraria-backend/internal/database"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"
)

const (
	KindStock      = "stock"
	KindDeliveries = "deliveries"
	KindProduction = "production"
	KindSales      = "sales"
)

// Report: relatório pronto para exportar.
type Report struct {
	Filename string
	Header   []string
	Rows     [][]string
}

// CSV: texto separado por ponto e vírgula, cabeçalho primeiro, uma linha por
// registro. É o mesmo formato que o sistema antigo gerava no navegador.
func (r *Report) CSV() string {
	var b strings.Builder
	b.WriteString(strings.Join(r.Header, ";"))
	b.WriteByte('\n')
	for _, row := range r.Rows {
		b.WriteString(strings.Join(row, ";"))
		b.WriteByte('\n')
	}
	return b.String()
}

// BuildReport: projeta a coleção da entidade em linhas planas, na mesma
// ordem das listagens (data decrescente). Lista vazia devolve
// ledger.ErrNoData para o chamador avisar em vez de baixar um arquivo vazio.
func BuildReport(kind string) (*Report, error) {
	switch kind {
	case KindStock:
		return stockReport()
	case KindDeliveries:
		return deliveriesReport()
	case KindProduction:
		return productionReport()
	case KindSales:
		return salesReport()
	default:
		return nil, ledger.Invalid("kind", "relatório deve ser stock, deliveries, production ou sales")
	}
}

func formatDay(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatDayTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func stockReport() (*Report, error) {
	var entries []models.WoodStock
	if err := database.DB.Order("entry_date DESC").Find(&entries).Error; err != nil {
		return nil, &ledger.IOError{Op: "list stock", Err: err}
	}
	if len(entries) == 0 {
		return nil, ledger.ErrNoData
	}

	names, err := ledger.SupplierNames()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Filename: "report_stock.csv",
		Header:   []string{"Tipo", "Quantidade", "Fornecedor", "Data de Entrada"},
	}
	for _, e := range entries {
		report.Rows = append(report.Rows, []string{
			e.WoodType,
			formatQuantity(e.Quantity),
			ledger.SupplierLabel(names, e.SupplierID),
			formatDay(e.EntryDate),
		})
	}
	return report, nil
}

func deliveriesReport() (*Report, error) {
	var deliveries []models.TruckDelivery
	if err := database.DB.Order("delivery_date DESC").Find(&deliveries).Error; err != nil {
		return nil, &ledger.IOError{Op: "list deliveries", Err: err}
	}
	if len(deliveries) == 0 {
		return nil, ledger.ErrNoData
	}

	names, err := ledger.SupplierNames()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Filename: "report_deliveries.csv",
		Header:   []string{"Placa", "Motorista", "Fornecedor", "Tipo Madeira", "Quantidade", "Data"},
	}
	for _, d := range deliveries {
		report.Rows = append(report.Rows, []string{
			d.LicensePlate,
			d.DriverName,
			ledger.SupplierLabel(names, d.SupplierID),
			d.WoodType,
			formatQuantity(d.Quantity),
			formatDayTime(d.DeliveryDate),
		})
	}
	return report, nil
}

func productionReport() (*Report, error) {
	var runs []models.PalletProduction
	if err := database.DB.Order("production_date DESC").Find(&runs).Error; err != nil {
		return nil, &ledger.IOError{Op: "list production", Err: err}
	}
	if len(runs) == 0 {
		return nil, ledger.ErrNoData
	}

	report := &Report{
		Filename: "report_production.csv",
		Header:   []string{"Data", "Quantidade", "Tamanho", "Madeira Consumida", "Operador"},
	}
	for _, r := range runs {
		operator := r.OperatorName
		if operator == "" {
			operator = "-"
		}
		report.Rows = append(report.Rows, []string{
			formatDay(r.ProductionDate),
			strconv.Itoa(r.Quantity),
			string(r.PalletSize),
			formatQuantity(r.WoodConsumed),
			operator,
		})
	}
	return report, nil
}

func salesReport() (*Report, error) {
	var salesList []models.Sale
	if err := database.DB.Order("sale_date DESC").Find(&salesList).Error; err != nil {
		return nil, &ledger.IOError{Op: "list sales", Err: err}
	}
	if len(salesList) == 0 {
		return nil, ledger.ErrNoData
	}

	report := &Report{
		Filename: "report_sales.csv",
		Header:   []string{"Data", "Comprador", "Produto", "Quantidade", "Valor Total", "Status"},
	}
	for _, s := range salesList {
		status := "Pendente"
		if s.PaymentStatus == models.PaymentPaid {
			status = "Pago"
		}
		report.Rows = append(report.Rows, []string{
			formatDay(s.SaleDate),
			s.BuyerName,
			s.ProductType,
			strconv.Itoa(s.Quantity),
			formatMoney(s.TotalAmount),
			status,
		})
	}
	return report, nil
}
