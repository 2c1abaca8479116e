package sales_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
)

// fakeSaleRepo repositorio de ventas en memoria para tests. Respeta el contrato
// del puerto: (nil, nil) cuando no existe y compare-and-set en ApplyDecision.
type fakeSaleRepo struct {
	mu        sync.Mutex
	sales     map[string]*entity.Sale
	failWrite error // si no es nil, Create y Update fallan con este error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return r.failWrite
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) ListAll(_ context.Context) ([]*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListBySalesRep(ctx context.Context, salesRepID string) ([]*entity.Sale, error) {
	all, _ := r.ListAll(ctx)
	var out []*entity.Sale
	for _, s := range all {
		if s.SalesRepID == salesRepID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Sale, error) {
	all, _ := r.ListAll(ctx)
	var out []*entity.Sale
	for _, s := range all {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	all, _ := r.ListAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeSaleRepo) ApplyDecision(_ context.Context, saleID string, d repository.DecisionUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[saleID]
	if !ok || s.Status != entity.SaleStatusPending {
		return false, nil
	}
	s.Status = d.Status
	s.ApprovedBy = d.ApprovedBy
	s.ApproverName = d.ApproverName
	at := d.ApprovedAt
	s.ApprovedAt = &at
	s.RejectionReason = d.RejectionReason
	s.UpdatedAt = d.ApprovedAt
	return true, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return r.failWrite
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sales, id)
	return nil
}

// sentNotification registro de una llamada a Notify.
type sentNotification struct {
	UserID   string
	Type     string
	Title    string
	Message  string
	Link     string
	Metadata map[string]any
}

// fakeNotifier captura las notificaciones emitidas; puede forzarse a fallar.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	fail bool
}

func (n *fakeNotifier) Notify(_ context.Context, userID, ntype, title, message, link string, metadata map[string]any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("sumidero de notificaciones caído")
	}
	n.sent = append(n.sent, sentNotification{
		UserID: userID, Type: ntype, Title: title,
		Message: message, Link: link, Metadata: metadata,
	})
	return nil
}

func (n *fakeNotifier) sentTo(userID string) []sentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []sentNotification
	for _, s := range n.sent {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}
