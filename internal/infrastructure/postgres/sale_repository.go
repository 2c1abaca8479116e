package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
	"github.com/jcastillo/ventas-pap-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, sales_rep_id, sales_rep_name, manager_id, customer_name,
	customer_address, customer_phone, customer_email, sale_type, products,
	total_value, total_points, status, approved_by, approver_name, approved_at,
	rejection_reason, notes, sale_date, created_at, updated_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
//
// Las líneas de producto viajan como JSONB en la columna products (estilo
// documento): la venta se lee y escribe como un registro completo y las
// consultas solo filtran por columnas escalares de igualdad simple.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta nueva con sus líneas embebidas.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	products, err := json.Marshal(sale.Products)
	if err != nil {
		return fmt.Errorf("marshal sale products: %w", err)
	}
	query := `
		INSERT INTO sales (id, sales_rep_id, sales_rep_name, manager_id, customer_name,
			customer_address, customer_phone, customer_email, sale_type, products,
			total_value, total_points, status, approved_by, approver_name, approved_at,
			rejection_reason, notes, sale_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = r.q.Exec(ctx, query,
		sale.ID, sale.SalesRepID, sale.SalesRepName, sale.ManagerID, sale.CustomerName,
		sale.CustomerAddress, sale.CustomerPhone, sale.CustomerEmail, sale.SaleType, products,
		sale.TotalValue, sale.TotalPoints, sale.Status, sale.ApprovedBy, sale.ApproverName, sale.ApprovedAt,
		sale.RejectionReason, sale.Notes, sale.SaleDate, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert sale: id duplicado: %w", err)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// ListAll devuelve todas las ventas (más recientes primero). El volumen esperado
// es de miles de registros; las proyecciones filtran en memoria sobre este set.
func (r *SaleRepo) ListAll(ctx context.Context) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListBySalesRep lista las ventas de un representante (igualdad simple).
func (r *SaleRepo) ListBySalesRep(ctx context.Context, salesRepID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sales_rep_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, salesRepID)
}

// ListByStatus lista las ventas en un estado (igualdad simple).
func (r *SaleRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

// ListRecent lista las últimas ventas con límite.
func (r *SaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

// ApplyDecision transición condicional pending → approved/rejected.
// El WHERE exige status='pending': si otra decisión llegó primero, cero filas
// afectadas y se devuelve false sin tocar nada (compare-and-set).
func (r *SaleRepo) ApplyDecision(ctx context.Context, saleID string, d repository.DecisionUpdate) (bool, error) {
	query := `
		UPDATE sales
		SET status = $2, approved_by = $3, approver_name = $4, approved_at = $5,
			rejection_reason = $6, updated_at = $5
		WHERE id = $1 AND status = 'pending'`
	cmd, err := r.q.Exec(ctx, query,
		saleID, d.Status, d.ApprovedBy, d.ApproverName, d.ApprovedAt, d.RejectionReason,
	)
	if err != nil {
		return false, fmt.Errorf("apply decision: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Update sobrescribe el registro completo (edición administrativa).
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	products, err := json.Marshal(sale.Products)
	if err != nil {
		return fmt.Errorf("marshal sale products: %w", err)
	}
	query := `
		UPDATE sales
		SET manager_id = $2, customer_name = $3, customer_address = $4,
			customer_phone = $5, customer_email = $6, sale_type = $7, products = $8,
			total_value = $9, total_points = $10, status = $11, approved_by = $12,
			approver_name = $13, approved_at = $14, rejection_reason = $15,
			notes = $16, sale_date = $17, updated_at = $18
		WHERE id = $1`
	_, err = r.q.Exec(ctx, query,
		sale.ID, sale.ManagerID, sale.CustomerName, sale.CustomerAddress,
		sale.CustomerPhone, sale.CustomerEmail, sale.SaleType, products,
		sale.TotalValue, sale.TotalPoints, sale.Status, sale.ApprovedBy,
		sale.ApproverName, sale.ApprovedAt, sale.RejectionReason,
		sale.Notes, sale.SaleDate, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}

// scanSale lee una fila (pgx.Row o pgx.Rows) en la entidad, deserializando las
// líneas de producto desde JSONB.
func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var products []byte
	err := row.Scan(
		&s.ID, &s.SalesRepID, &s.SalesRepName, &s.ManagerID, &s.CustomerName,
		&s.CustomerAddress, &s.CustomerPhone, &s.CustomerEmail, &s.SaleType, &products,
		&s.TotalValue, &s.TotalPoints, &s.Status, &s.ApprovedBy, &s.ApproverName, &s.ApprovedAt,
		&s.RejectionReason, &s.Notes, &s.SaleDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		if err := json.Unmarshal(products, &s.Products); err != nil {
			return nil, fmt.Errorf("unmarshal sale products: %w", err)
		}
	}
	return &s, nil
}
