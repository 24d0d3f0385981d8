package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	"github.com/jhoicas/Comissoes-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.CommissionRuleRepository = (*CommissionRuleRepo)(nil)

// CommissionRuleRepo reglas en la tabla commission_rules. Las faixas viajan como JSONB.
type CommissionRuleRepo struct {
	q Querier
}

// NewCommissionRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommissionRuleRepository(q Querier) *CommissionRuleRepo {
	return &CommissionRuleRepo{q: q}
}

const ruleColumns = `id, supplier_id, name, target, is_default, kind, percentage, tiers, created_at, updated_at`

type tierJSON struct {
	Min        decimal.Decimal  `json:"min"`
	Max        *decimal.Decimal `json:"max"`
	Percentage decimal.Decimal  `json:"percentage"`
}

// Create persiste una regla.
func (r *CommissionRuleRepo) Create(rule *entity.CommissionRule) error {
	var pct decimal.NullDecimal
	var tiers []byte
	switch k := rule.Kind.(type) {
	case entity.FixedRate:
		pct = decimal.NewNullDecimal(k.Percentage)
	case entity.TieredRate:
		rows := make([]tierJSON, 0, k.Tiers.Len())
		for _, t := range k.Tiers.Tiers() {
			rows = append(rows, tierJSON{Min: t.Min, Max: t.Max, Percentage: t.Percentage})
		}
		b, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encode tiers: %w", err)
		}
		tiers = b
	default:
		return domain.ErrInvalidRule
	}
	query := `INSERT INTO commission_rules (` + ruleColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.SupplierID, rule.Name, string(rule.Target), rule.IsDefault, entity.KindName(rule.Kind),
		pct, tiers, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert commission rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *CommissionRuleRepo) GetByID(id string) (*entity.CommissionRule, error) {
	row := r.q.QueryRow(context.Background(), `SELECT `+ruleColumns+` FROM commission_rules WHERE id = $1`, id)
	rule, err := scanRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission rule: %w", err)
	}
	return rule, nil
}

// ListBySupplier devuelve las reglas de una pasta en orden de creación.
func (r *CommissionRuleRepo) ListBySupplier(supplierID string) ([]entity.CommissionRule, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+ruleColumns+` FROM commission_rules WHERE supplier_id = $1 ORDER BY created_at`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list commission rules: %w", err)
	}
	defer rows.Close()
	var list []entity.CommissionRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commission rule: %w", err)
		}
		list = append(list, *rule)
	}
	return list, rows.Err()
}

// ClearDefault quita la marca default de las reglas de la pasta para el target.
func (r *CommissionRuleRepo) ClearDefault(supplierID string, target entity.RuleTarget) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE commission_rules SET is_default = false, updated_at = now() WHERE supplier_id = $1 AND target = $2 AND is_default`,
		supplierID, string(target),
	)
	if err != nil {
		return fmt.Errorf("clear default rule: %w", err)
	}
	return nil
}

// Delete elimina una regla por ID.
func (r *CommissionRuleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM commission_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete commission rule: %w", err)
	}
	return nil
}

func scanRule(row pgx.Row) (*entity.CommissionRule, error) {
	var (
		rule   entity.CommissionRule
		target string
		kind   string
		pct    decimal.NullDecimal
		tiers  []byte
	)
	if err := row.Scan(&rule.ID, &rule.SupplierID, &rule.Name, &target, &rule.IsDefault, &kind,
		&pct, &tiers, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
		return nil, err
	}
	rule.Target = entity.RuleTarget(target)
	switch kind {
	case entity.RuleKindFixed:
		rule.Kind = entity.FixedRate{Percentage: pct.Decimal}
	case entity.RuleKindTiered:
		var rows []tierJSON
		if err := json.Unmarshal(tiers, &rows); err != nil {
			return nil, fmt.Errorf("decode tiers: %w", err)
		}
		list := make([]entity.Tier, len(rows))
		for i, t := range rows {
			list[i] = entity.Tier{Min: t.Min, Max: t.Max, Percentage: t.Percentage}
		}
		tl, err := entity.NewTierList(list)
		if err != nil {
			return nil, fmt.Errorf("regla %s: %w", rule.ID, err)
		}
		rule.Kind = entity.TieredRate{Tiers: tl}
	default:
		return nil, fmt.Errorf("regla %s: tipo %q: %w", rule.ID, kind, domain.ErrInvalidRule)
	}
	return &rule, nil
}
