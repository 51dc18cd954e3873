package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implementación PostgreSQL del repositorio de pedidos.
// Los items del pedido se guardan como JSONB en la misma fila.
type OrderRepository struct {
	q Querier
}

// NewOrderRepository acepta pool o tx.
func NewOrderRepository(q Querier) *OrderRepository {
	return &OrderRepository{q: q}
}

type orderItemRow struct {
	ProductID string `json:"product_id"`
	Nombre    string `json:"nombre"`
	Cantidad  string `json:"cantidad"`
	Precio    string `json:"precio"`
}

const orderColumns = `id, numero, cliente_id, canal, status, items, total,
	created_at, accepted_at, ready_at, delivered_at, created_by, updated_at`

// GetByID busca un pedido por ID. Retorna domain.ErrNotFound si no existe.
func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1`, id)
	return scanOrder(row)
}

// GetForUpdate bloquea la fila del pedido. Usar dentro de una transacción.
func (r *OrderRepository) GetForUpdate(id string) (*entity.Order, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
		FOR UPDATE`, id)
	return scanOrder(row)
}

// List filtra por estado. Con status vacío lista los pedidos no
// terminales, que son los que muestran los paneles.
func (r *OrderRepository) List(status entity.OrderStatus, limit, offset int) ([]entity.Order, error) {
	ctx := context.Background()

	var (
		rows pgx.Rows
		err  error
	)
	if status == "" {
		rows, err = r.q.Query(ctx, `
			SELECT `+orderColumns+`
			FROM orders
			WHERE status NOT IN ('entregado', 'rechazado', 'cancelado')
			ORDER BY created_at ASC
			LIMIT $1 OFFSET $2`, limit, offset)
	} else {
		rows, err = r.q.Query(ctx, `
			SELECT `+orderColumns+`
			FROM orders
			WHERE status = $1
			ORDER BY created_at ASC
			LIMIT $2 OFFSET $3`, status, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// Create inserta un pedido nuevo.
func (r *OrderRepository) Create(o *entity.Order) error {
	ctx := context.Background()
	items, err := marshalItems(o.Items)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO orders (id, numero, cliente_id, canal, status, items, total,
			created_at, accepted_at, ready_at, delivered_at, created_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.Numero, o.ClienteID, o.Canal, o.Status, items, o.Total,
		o.CreatedAt, nullTime(o.AcceptedAt), nullTime(o.ReadyAt), nullTime(o.DeliveredAt),
		o.CreatedBy, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insertar pedido: %w", err)
	}
	return nil
}

// Update persiste estado y timestamps de transición del pedido.
func (r *OrderRepository) Update(o *entity.Order) error {
	ctx := context.Background()
	tag, err := r.q.Exec(ctx, `
		UPDATE orders
		SET status = $2, accepted_at = $3, ready_at = $4, delivered_at = $5, updated_at = $6
		WHERE id = $1`,
		o.ID, o.Status, nullTime(o.AcceptedAt), nullTime(o.ReadyAt), nullTime(o.DeliveredAt), o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o                          entity.Order
		itemsRaw                   []byte
		accepted, ready, delivered *time.Time
	)
	err := row.Scan(&o.ID, &o.Numero, &o.ClienteID, &o.Canal, &o.Status, &itemsRaw, &o.Total,
		&o.CreatedAt, &accepted, &ready, &delivered, &o.CreatedBy, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer pedido: %w", err)
	}
	if accepted != nil {
		o.AcceptedAt = *accepted
	}
	if ready != nil {
		o.ReadyAt = *ready
	}
	if delivered != nil {
		o.DeliveredAt = *delivered
	}
	o.Items, err = unmarshalItems(itemsRaw)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func marshalItems(items []entity.OrderItem) ([]byte, error) {
	rows := make([]orderItemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, orderItemRow{
			ProductID: it.ProductID,
			Nombre:    it.Nombre,
			Cantidad:  it.Cantidad.String(),
			Precio:    it.Precio.String(),
		})
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("serializar items: %w", err)
	}
	return b, nil
}

func unmarshalItems(raw []byte) ([]entity.OrderItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []orderItemRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("deserializar items: %w", err)
	}
	items := make([]entity.OrderItem, 0, len(rows))
	for _, r := range rows {
		cantidad, err := decimal.NewFromString(r.Cantidad)
		if err != nil {
			return nil, fmt.Errorf("cantidad inválida en items: %w", err)
		}
		precio, err := decimal.NewFromString(r.Precio)
		if err != nil {
			return nil, fmt.Errorf("precio inválido en items: %w", err)
		}
		items = append(items, entity.OrderItem{
			ProductID: r.ProductID,
			Nombre:    r.Nombre,
			Cantidad:  cantidad,
			Precio:    precio,
		})
	}
	return items, nil
}

// nullTime convierte el valor cero a NULL para columnas timestamptz.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
