// Package notification implementa el sumidero de notificaciones del portal.
//
// El core solo persiste avisos como no leídos; la entrega (push, email) y los
// reintentos son responsabilidad de otro sistema.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
)

const defaultNotificationLimit = 50

// UseCase crea y consulta notificaciones. Implementa sales.Notifier.
type UseCase struct {
	repo repository.NotificationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.NotificationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Notify persiste una notificación no leída para el usuario.
// Contrato del sumidero: (userId, type, title, message, link?, metadata?).
func (uc *UseCase) Notify(ctx context.Context, userID, ntype, title, message, link string, metadata map[string]any) error {
	if userID == "" || title == "" {
		return domain.ErrInvalidInput
	}

	var meta json.RawMessage
	if len(metadata) > 0 {
		b, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		meta = b
	}

	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Message:   message,
		Link:      link,
		Metadata:  meta,
		Read:      false,
		CreatedAt: time.Now(),
	}
	return uc.repo.Create(ctx, n)
}

// ListForUser lista las notificaciones del usuario (las más recientes primero)
// junto con el contador de no leídas.
func (uc *UseCase) ListForUser(ctx context.Context, userID string, onlyUnread bool, limit int) (*dto.NotificationListResponse, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	list, err := uc.repo.ListByUser(ctx, userID, onlyUnread, limit)
	if err != nil {
		return nil, err
	}
	unread, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			Metadata:  n.Metadata,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Items: items, UnreadCount: unread}, nil
}

// MarkRead marca una notificación del usuario como leída.
func (uc *UseCase) MarkRead(ctx context.Context, id, userID string) error {
	ok, err := uc.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead marca todas las notificaciones del usuario como leídas en un solo
// UPDATE agrupado: se aplica el lote completo o falla como un todo.
func (uc *UseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.repo.MarkAllRead(ctx, userID)
}
