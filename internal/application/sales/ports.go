package sales

import "context"

// Notifier es el contrato mínimo del emisor de notificaciones que consume el
// flujo de ventas. Lo implementa *notification.UseCase; la interfaz evita el
// acoplamiento directo y permite fakes en tests.
//
// Las llamadas son fire-and-forget desde el punto de vista del flujo: un error
// del Notifier se registra y se descarta, nunca hace fallar la operación
// principal que lo disparó.
type Notifier interface {
	Notify(ctx context.Context, userID, ntype, title, message, link string, metadata map[string]any) error
}
