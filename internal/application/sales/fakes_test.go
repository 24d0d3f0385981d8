package sales_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Comissoes-api/internal/application/sales"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct{ byID map[string]*entity.Supplier }

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) ListByUser(string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}

type fakeProductRepo struct{ byID map[string]*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) GetBySupplierAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) ListBySupplier(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ClearRule(string) error { return nil }

type fakeClientRepo struct{ byID map[string]*entity.Client }

func (r *fakeClientRepo) Create(c *entity.Client) error { r.byID[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.byID[id], nil
}
func (r *fakeClientRepo) ListByUser(string, int, int) ([]*entity.Client, error) {
	return nil, nil
}

type fakeSaleRepo struct {
	sales        map[string]*entity.Sale
	items        []*entity.SaleItem
	installments []*entity.SaleInstallment
	failOn       string // "item" | "installment"
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	if r.failOn == "item" {
		return errors.New("fallo simulado")
	}
	r.items = append(r.items, it)
	return nil
}
func (r *fakeSaleRepo) CreateInstallment(in *entity.SaleInstallment) error {
	if r.failOn == "installment" {
		return errors.New("fallo simulado")
	}
	r.installments = append(r.installments, in)
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.sales[id], nil }
func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.items {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) GetInstallmentsBySaleID(saleID string) ([]*entity.SaleInstallment, error) {
	var out []*entity.SaleInstallment
	for _, in := range r.installments {
		if in.SaleID == saleID {
			out = append(out, in)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) ListByUser(userID string, _, _ time.Time, _, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner aplica los cambios sobre una copia y solo los publica si fn no falla.
type fakeTxRunner struct{ repo *fakeSaleRepo }

func (t *fakeTxRunner) RunSale(_ context.Context, fn func(repository.SaleRepository) error) error {
	staged := &fakeSaleRepo{sales: map[string]*entity.Sale{}, failOn: t.repo.failOn}
	if err := fn(staged); err != nil {
		return err
	}
	for id, s := range staged.sales {
		t.repo.sales[id] = s
	}
	t.repo.items = append(t.repo.items, staged.items...)
	t.repo.installments = append(t.repo.installments, staged.installments...)
	return nil
}

type fakePDF struct{ got sales.StatementData }

func (g *fakePDF) Generate(_ context.Context, data sales.StatementData) ([]byte, error) {
	g.got = data
	return []byte("%PDF-fake"), nil
}
