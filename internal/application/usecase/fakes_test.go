package usecase_test

import (
	"context"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// memStore guarda pastas, reglas y productos; GetByID de la pasta arma Rules como
// lo hace el repo de Postgres.
type memStore struct {
	suppliers map[string]*entity.Supplier
	rules     map[string]*entity.CommissionRule
	products  map[string]*entity.Product
}

func newMemStore() *memStore {
	return &memStore{
		suppliers: map[string]*entity.Supplier{},
		rules:     map[string]*entity.CommissionRule{},
		products:  map[string]*entity.Product{},
	}
}

type memSuppliers struct{ *memStore }

func (m memSuppliers) Create(s *entity.Supplier) error { m.suppliers[s.ID] = s; return nil }
func (m memSuppliers) GetByID(id string) (*entity.Supplier, error) {
	s, ok := m.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Rules = nil
	for _, r := range m.rules {
		if r.SupplierID == id {
			cp.Rules = append(cp.Rules, *r)
		}
	}
	return &cp, nil
}
func (m memSuppliers) Update(s *entity.Supplier) error { m.suppliers[s.ID] = s; return nil }
func (m memSuppliers) ListByUser(userID string, _, _ int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range m.suppliers {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memRules struct{ *memStore }

func (m memRules) Create(r *entity.CommissionRule) error { m.rules[r.ID] = r; return nil }
func (m memRules) GetByID(id string) (*entity.CommissionRule, error) {
	return m.rules[id], nil
}
func (m memRules) ListBySupplier(supplierID string) ([]entity.CommissionRule, error) {
	var out []entity.CommissionRule
	for _, r := range m.rules {
		if r.SupplierID == supplierID {
			out = append(out, *r)
		}
	}
	return out, nil
}
func (m memRules) ClearDefault(supplierID string, target entity.RuleTarget) error {
	for _, r := range m.rules {
		if r.SupplierID == supplierID && r.Target == target {
			r.IsDefault = false
		}
	}
	return nil
}
func (m memRules) Delete(id string) error { delete(m.rules, id); return nil }

type memProducts struct{ *memStore }

func (m memProducts) Create(p *entity.Product) error { m.products[p.ID] = p; return nil }
func (m memProducts) GetByID(id string) (*entity.Product, error) {
	return m.products[id], nil
}
func (m memProducts) GetBySupplierAndSKU(supplierID, sku string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.SupplierID == supplierID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (m memProducts) Update(p *entity.Product) error { m.products[p.ID] = p; return nil }
func (m memProducts) ListBySupplier(supplierID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m memProducts) ClearRule(ruleID string) error {
	for _, p := range m.products {
		if p.CommissionRuleID != nil && *p.CommissionRuleID == ruleID {
			p.CommissionRuleID = nil
		}
		if p.TaxRuleID != nil && *p.TaxRuleID == ruleID {
			p.TaxRuleID = nil
		}
	}
	return nil
}

type memTx struct{ *memStore }

func (t memTx) RunRules(_ context.Context, fn func(repository.CommissionRuleRepository, repository.ProductRepository) error) error {
	return fn(memRules{t.memStore}, memProducts{t.memStore})
}

type memUsers map[string]*entity.User

func (m memUsers) Create(u *entity.User) error { m[u.ID] = u; return nil }
func (m memUsers) GetByID(id string) (*entity.User, error) {
	return m[id], nil
}
func (m memUsers) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m memUsers) Update(u *entity.User) error {
	if _, ok := m[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	m[u.ID] = u
	return nil
}
