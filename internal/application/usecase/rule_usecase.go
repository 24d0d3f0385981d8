package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/jhoicas/Comissoes-api/pkg/textutil"
)

// RuleUseCase reglas de comisión/impuesto por pasta.
type RuleUseCase struct {
	txRunner     RuleTxRunner
	supplierRepo repository.SupplierRepository
	ruleRepo     repository.CommissionRuleRepository
}

// NewRuleUseCase construye el caso de uso.
func NewRuleUseCase(txRunner RuleTxRunner, supplierRepo repository.SupplierRepository, ruleRepo repository.CommissionRuleRepository) *RuleUseCase {
	return &RuleUseCase{txRunner: txRunner, supplierRepo: supplierRepo, ruleRepo: ruleRepo}
}

// Create valida el tipo de regla y la guarda. Si es default, la anterior default de la
// misma pasta y target deja de serlo (en la misma transacción).
func (uc *RuleUseCase) Create(ctx context.Context, userID, supplierID string, in dto.CreateRuleRequest) (*dto.CommissionRuleResponse, error) {
	if _, err := ownedSupplier(uc.supplierRepo, userID, supplierID); err != nil {
		return nil, err
	}
	target := entity.RuleTarget(in.Target)
	name := textutil.CleanName(in.Name, 0)
	if name == "" || !target.Valid() {
		return nil, domain.ErrInvalidInput
	}
	kind, err := buildRuleKind(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	rule := &entity.CommissionRule{
		ID:         uuid.New().String(),
		SupplierID: supplierID,
		Name:       name,
		Target:     target,
		IsDefault:  in.IsDefault,
		Kind:       kind,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.RunRules(ctx, func(ruleRepo repository.CommissionRuleRepository, _ repository.ProductRepository) error {
		if rule.IsDefault {
			if err := ruleRepo.ClearDefault(supplierID, target); err != nil {
				return fmt.Errorf("rule: quitar default anterior: %w", err)
			}
		}
		return ruleRepo.Create(rule)
	})
	if err != nil {
		return nil, err
	}
	out := toRuleResponse(rule)
	return &out, nil
}

// List reglas de la pasta.
func (uc *RuleUseCase) List(userID, supplierID string) ([]dto.CommissionRuleResponse, error) {
	if _, err := ownedSupplier(uc.supplierRepo, userID, supplierID); err != nil {
		return nil, err
	}
	rules, err := uc.ruleRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommissionRuleResponse, 0, len(rules))
	for i := range rules {
		out = append(out, toRuleResponse(&rules[i]))
	}
	return out, nil
}

// Delete elimina la regla y la desasigna de los productos que la usaban.
func (uc *RuleUseCase) Delete(ctx context.Context, userID, ruleID string) error {
	rule, err := uc.ruleRepo.GetByID(ruleID)
	if err != nil {
		return err
	}
	if rule == nil {
		return domain.ErrNotFound
	}
	if _, err := ownedSupplier(uc.supplierRepo, userID, rule.SupplierID); err != nil {
		return err
	}
	return uc.txRunner.RunRules(ctx, func(ruleRepo repository.CommissionRuleRepository, productRepo repository.ProductRepository) error {
		if err := productRepo.ClearRule(ruleID); err != nil {
			return fmt.Errorf("rule: desasignar productos: %w", err)
		}
		return ruleRepo.Delete(ruleID)
	})
}

// buildRuleKind arma FixedRate o TieredRate desde la entrada.
func buildRuleKind(in dto.CreateRuleRequest) (entity.RuleKind, error) {
	switch in.Kind {
	case entity.RuleKindFixed:
		if in.Percentage == nil || !validPercentage(*in.Percentage) {
			return nil, fmt.Errorf("%w: porcentaje fijo fuera de 0..100", domain.ErrInvalidRule)
		}
		return entity.FixedRate{Percentage: *in.Percentage}, nil
	case entity.RuleKindTiered:
		tiers := make([]entity.Tier, len(in.Tiers))
		for i, t := range in.Tiers {
			tiers[i] = entity.Tier{Min: t.Min, Max: t.Max, Percentage: t.Percentage}
		}
		list, err := entity.NewTierList(tiers)
		if err != nil {
			return nil, err
		}
		return entity.TieredRate{Tiers: list}, nil
	default:
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidRule, in.Kind)
	}
}

func toRuleResponse(r *entity.CommissionRule) dto.CommissionRuleResponse {
	out := dto.CommissionRuleResponse{
		ID:         r.ID,
		SupplierID: r.SupplierID,
		Name:       r.Name,
		Target:     string(r.Target),
		Kind:       entity.KindName(r.Kind),
		IsDefault:  r.IsDefault,
		CreatedAt:  r.CreatedAt,
	}
	switch k := r.Kind.(type) {
	case entity.FixedRate:
		p := k.Percentage
		out.Percentage = &p
	case entity.TieredRate:
		for _, t := range k.Tiers.Tiers() {
			out.Tiers = append(out.Tiers, dto.TierDTO{Min: t.Min, Max: t.Max, Percentage: t.Percentage})
		}
	}
	return out
}
