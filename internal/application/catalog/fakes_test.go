package catalog_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
	"github.com/jhoicas/tutu-catalog/internal/domain/repository"
)

// memStore estado en memoria compartido por los repos fake. Simula la parte
// del contrato del Record Store que usan los casos de uso: ids secuenciales,
// búsqueda de identidad con menor id y transacciones con rollback por snapshot.
type memStore struct {
	products []entity.Product
	sizes    []entity.SizeStock
	nextID   int64

	failSizeOn  int // 1-based: el n-ésimo insert de talla falla; 0 desactivado
	sizeInserts int
}

func newMemStore() *memStore { return &memStore{nextID: 1} }

func (st *memStore) clone() *memStore {
	cp := *st
	cp.products = append([]entity.Product(nil), st.products...)
	cp.sizes = append([]entity.SizeStock(nil), st.sizes...)
	return &cp
}

// seedParent inserta directamente una fila raíz (para simular anomalías como
// padres duplicados que el índice único normalmente impediría).
func (st *memStore) seedParent(category, gender, ptype, name string) int64 {
	p := entity.Product{ID: st.nextID, Category: category, Gender: gender, Type: ptype, Name: name}
	st.nextID++
	st.products = append(st.products, p)
	return p.ID
}

type memProductRepo struct{ st *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	p.ID = r.st.nextID
	r.st.nextID++
	r.st.products = append(r.st.products, *p)
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	for i := range r.st.products {
		if r.st.products[i].ID == id {
			p := r.st.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) FindParentByIdentity(category, gender, ptype, name string) (*entity.Product, error) {
	var best *entity.Product
	for i := range r.st.products {
		p := r.st.products[i]
		if p.ParentID != nil {
			continue
		}
		if p.Category == category && p.Gender == gender && p.Type == ptype && p.Name == name {
			if best == nil || p.ID < best.ID {
				cp := p
				best = &cp
			}
		}
	}
	return best, nil
}

func (r *memProductRepo) ListFiltered(f entity.ProductFilter) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.st.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Gender != "" && p.Gender != f.Gender {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Color != "" && !strings.Contains(strings.ToLower(p.Color), strings.ToLower(f.Color)) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) ListByParent(parentID int64) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.st.products {
		if p.ParentID != nil && *p.ParentID == parentID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) DistinctTypes(category string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range r.st.products {
		if p.Category == category && !seen[p.Type] {
			seen[p.Type] = true
			out = append(out, p.Type)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *memProductRepo) Delete(id int64) error {
	kept := r.st.products[:0]
	for _, p := range r.st.products {
		if p.ID == id {
			continue
		}
		// ON DELETE SET NULL: los hijos del borrado quedan promovidos a raíz.
		if p.ParentID != nil && *p.ParentID == id {
			p.ParentID = nil
		}
		kept = append(kept, p)
	}
	r.st.products = kept
	return nil
}

type memSizeRepo struct{ st *memStore }

var _ repository.SizeStockRepository = (*memSizeRepo)(nil)

func (r *memSizeRepo) Create(s *entity.SizeStock) error {
	r.st.sizeInserts++
	if r.st.failSizeOn > 0 && r.st.sizeInserts == r.st.failSizeOn {
		return errors.New("insert size stock: fallo inyectado")
	}
	r.st.sizes = append(r.st.sizes, *s)
	return nil
}

func (r *memSizeRepo) ListByProduct(productID int64) ([]entity.SizeStock, error) {
	var out []entity.SizeStock
	for _, s := range r.st.sizes {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	return out, nil
}

func (r *memSizeRepo) DeleteByProduct(productID int64) error {
	kept := r.st.sizes[:0]
	for _, s := range r.st.sizes {
		if s.ProductID != productID {
			kept = append(kept, s)
		}
	}
	r.st.sizes = kept
	return nil
}

// memTxRunner simula la transacción con snapshot: si fn falla, el estado
// vuelve exactamente al de antes (rollback completo).
type memTxRunner struct{ st *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	sizeRepo repository.SizeStockRepository,
) error) error {
	snapshot := t.st.clone()
	if err := fn(&memProductRepo{t.st}, &memSizeRepo{t.st}); err != nil {
		*t.st = *snapshot
		return err
	}
	return nil
}
