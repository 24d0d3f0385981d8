package repository

import (
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
)

// CommissionRuleRepository define el puerto de persistencia para reglas de comisión/impuesto.
type CommissionRuleRepository interface {
	Create(rule *entity.CommissionRule) error
	GetByID(id string) (*entity.CommissionRule, error)
	ListBySupplier(supplierID string) ([]entity.CommissionRule, error)
	// ClearDefault quita la marca default de las reglas de la pasta para el target.
	ClearDefault(supplierID string, target entity.RuleTarget) error
	Delete(id string) error
}
