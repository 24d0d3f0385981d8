package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
)

// RuleTxRunner agrupa en una transacción los cambios de reglas y de los productos que
// las referencian (default único por pasta y target, desasignación al borrar).
type RuleTxRunner interface {
	RunRules(ctx context.Context, fn func(
		ruleRepo repository.CommissionRuleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

var hundred = decimal.NewFromInt(100)

// validPercentage porcentaje en [0, 100].
func validPercentage(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}

// ownedSupplier carga la pasta y verifica que sea del usuario.
func ownedSupplier(repo repository.SupplierRepository, userID, supplierID string) (*entity.Supplier, error) {
	s, err := repo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if s.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return s, nil
}
