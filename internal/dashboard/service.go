package dashboard

import (
	"time"

	"serraria-backend/internal/database"
	"serraria-backend/internal/ledger"
	"serraria-backend/internal/models"
)

type Metrics struct {
	TotalStockM3     float64 `json:"total_stock_m3"`
	PalletsToday     int     `json:"pallets_today"`
	DeliveriesToday  int     `json:"deliveries_today"`
	DeliveredTodayM3 float64 `json:"delivered_today_m3"`
	MonthSales       float64 `json:"month_sales"`
}

// ComputeMetrics: recalcula tudo a partir dos registros crus a cada chamada.
// O volume de registros é pequeno, então a redução em memória resolve e o
// resultado é sempre o estado real do banco.
func ComputeMetrics(today time.Time) (*Metrics, error) {
	var stock []models.WoodStock
	if err := database.DB.Find(&stock).Error; err != nil {
		return nil, &ledger.IOError{Op: "load stock", Err: err}
	}
	var runs []models.PalletProduction
	if err := database.DB.Find(&runs).Error; err != nil {
		return nil, &ledger.IOError{Op: "load production", Err: err}
	}
	var deliveries []models.TruckDelivery
	if err := database.DB.Find(&deliveries).Error; err != nil {
		return nil, &ledger.IOError{Op: "load deliveries", Err: err}
	}
	var salesList []models.Sale
	if err := database.DB.Find(&salesList).Error; err != nil {
		return nil, &ledger.IOError{Op: "load sales", Err: err}
	}

	count, volume := DeliveriesOn(deliveries, today)
	return &Metrics{
		TotalStockM3:     TotalStock(stock),
		PalletsToday:     PalletsProducedOn(runs, today),
		DeliveriesToday:  count,
		DeliveredTodayM3: volume,
		MonthSales:       MonthToDateSales(salesList, today),
	}, nil
}

// TotalStock: soma de todas as entradas de estoque. Produção e venda não
// abatem do estoque, então o total só cresce (herdado do sistema antigo).
func TotalStock(entries []models.WoodStock) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Quantity
	}
	return total
}

// PalletsProducedOn: paletes produzidos no dia (igualdade de calendário no
// fuso local, não intervalo de timestamp).
func PalletsProducedOn(runs []models.PalletProduction, day time.Time) int {
	total := 0
	for _, r := range runs {
		if ledger.SameDay(r.ProductionDate, day) {
			total += r.Quantity
		}
	}
	return total
}

// DeliveriesOn: quantas entregas chegaram no dia e o volume recebido.
// O intervalo é [00:00:00, 23:59:59] inclusivo no fuso local.
func DeliveriesOn(deliveries []models.TruckDelivery, day time.Time) (int, float64) {
	start, end := ledger.DayBounds(day)
	count := 0
	volume := 0.0
	for _, d := range deliveries {
		if d.DeliveryDate.Before(start) || d.DeliveryDate.After(end) {
			continue
		}
		count++
		volume += d.Quantity
	}
	return count, volume
}

// MonthToDateSales: soma do total_amount gravado das vendas entre o dia 1º
// do mês corrente e hoje, inclusivos.
func MonthToDateSales(salesList []models.Sale, today time.Time) float64 {
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	_, endOfToday := ledger.DayBounds(today)
	total := 0.0
	for _, s := range salesList {
		if s.SaleDate.Before(firstOfMonth) || s.SaleDate.After(endOfToday) {
			continue
		}
		total += s.TotalAmount
	}
	return total
}
