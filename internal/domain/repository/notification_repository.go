package repository

import (
	"context"

	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, userID string, onlyUnread bool, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id, userID string) (bool, error)
	// MarkAllRead marca como leídas todas las notificaciones del usuario en un solo
	// UPDATE agrupado: o se aplica el lote completo o falla como un todo.
	MarkAllRead(ctx context.Context, userID string) error
}
