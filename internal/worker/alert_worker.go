package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/engrjeff/kapenatinph/internal/infra"

	"github.com/rs/zerolog/log"
)

// LowStockPayload is the job body for low-stock alert emails.
type LowStockPayload struct {
	UserID       string `json:"user_id"`
	ItemName     string `json:"item_name"`
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
	Status       string `json:"status"`
}

// AlertWorker emails the shop owner when stock runs low or out.
type AlertWorker struct {
	mailer  *infra.Mailer
	toEmail string
}

func NewAlertWorker(mailer *infra.Mailer, toEmail string) *AlertWorker {
	return &AlertWorker{mailer: mailer, toEmail: toEmail}
}

// Process sends the alert email. Failures are logged and the job is dropped
// to the DLQ by the pool.
func (w *AlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload LowStockPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("alert_worker: invalid payload: %w", err)
	}
	if w.toEmail == "" {
		log.Warn().Msg("alert_worker: no alert email configured, skipping")
		return nil
	}

	subject := fmt.Sprintf("Stock alert: %s is %s", payload.ItemName, humanStatus(payload.Status))
	body := fmt.Sprintf(
		"Inventory item %s (SKU %s) is %s.\n\nQuantity on hand: %d\nReorder level: %d\n",
		payload.ItemName, payload.SKU, humanStatus(payload.Status),
		payload.Quantity, payload.ReorderLevel,
	)

	if err := w.mailer.SendAlert(w.toEmail, subject, body); err != nil {
		return fmt.Errorf("alert_worker: send: %w", err)
	}
	log.Info().Str("sku", payload.SKU).Msg("alert_worker: low stock alert sent")
	return nil
}

func humanStatus(status string) string {
	switch status {
	case "OUT_OF_STOCK":
		return "out of stock"
	case "LOW_IN_STOCK":
		return "running low"
	default:
		return status
	}
}
