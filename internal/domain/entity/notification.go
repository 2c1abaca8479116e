package entity

import (
	"encoding/json"
	"time"
)

// Tipos de notificación emitidos por el flujo de ventas.
const (
	NotificationSaleSubmitted = "sale_submitted"
	NotificationSalePending   = "sale_pending_approval"
	NotificationSaleApproved  = "sale_approved"
	NotificationSaleRejected  = "sale_rejected"
)

// Notification es un aviso persistido para un usuario. El core solo la crea como
// no leída; la entrega (push, email) es responsabilidad de otro sistema.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Message   string
	Link      string
	Metadata  json.RawMessage
	Read      bool
	CreatedAt time.Time
}
