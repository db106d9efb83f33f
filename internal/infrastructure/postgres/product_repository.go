package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category, gender, type, name, color, details, price, image_filename, image_path, parent_id, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna p.ID desde la secuencia (RETURNING id).
// El índice único parcial sobre la tupla de identidad convierte la carrera de
// doble padre en domain.ErrDuplicate.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (category, gender, type, name, color, details, price, image_filename, image_path, parent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Category, p.Gender, p.Type, p.Name, p.Color, p.Details,
		p.Price, p.ImageFilename, p.ImagePath, p.ParentID, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Category, &p.Gender, &p.Type, &p.Name, &p.Color, &p.Details,
		&p.Price, &p.ImageFilename, &p.ImagePath, &p.ParentID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// FindParentByIdentity busca el padre que coincide exactamente con la tupla
// (category, gender, type, name) entre las filas raíz (parent_id IS NULL).
// ORDER BY id LIMIT 1 resuelve de forma determinista la anomalía de padres
// duplicados: siempre gana el de menor id.
func (r *ProductRepo) FindParentByIdentity(category, gender, ptype, name string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE parent_id IS NULL AND category = $1 AND gender = $2 AND type = $3 AND name = $4
		ORDER BY id
		LIMIT 1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, category, gender, ptype, name).Scan(
		&p.ID, &p.Category, &p.Gender, &p.Type, &p.Name, &p.Color, &p.Details,
		&p.Price, &p.ImageFilename, &p.ImagePath, &p.ParentID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find parent by identity: %w", err)
	}
	return &p, nil
}

// ListFiltered devuelve las filas planas que cumplen el filtro, ordenadas por id
// (el orden estable que necesita el armado del árbol).
func (r *ProductRepo) ListFiltered(f entity.ProductFilter) ([]entity.Product, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Gender != "" {
		add("gender = $%d", f.Gender)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Color != "" {
		add("color ILIKE $%d", "%"+f.Color+"%")
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByParent devuelve todas las filas cuyo parent_id es parentID, ordenadas por id.
func (r *ProductRepo) ListByParent(parentID int64) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE parent_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list products by parent: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// DistinctTypes proyección deduplicada de type para una categoría (opciones de filtro).
func (r *ProductRepo) DistinctTypes(category string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT type FROM products WHERE category = $1 ORDER BY type`, category)
	if err != nil {
		return nil, fmt.Errorf("distinct types: %w", err)
	}
	defer rows.Close()
	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// Delete elimina un producto por ID. Las tallas se borran en la misma transacción
// (ver catalog.DeleteUseCase); los hijos quedan promovidos vía ON DELETE SET NULL.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Gender, &p.Type, &p.Name, &p.Color, &p.Details,
			&p.Price, &p.ImageFilename, &p.ImagePath, &p.ParentID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
