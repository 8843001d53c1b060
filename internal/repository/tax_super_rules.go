package repository

import (
	"context"
	"time"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
)

const taxSuperRuleColumns = `
	id, super_rate, int_student_weekly_cap,
	bracket1_max, bracket1_rate,
	bracket2_max, bracket2_base, bracket2_rate,
	bracket3_base, bracket3_rate,
	abn_withholding_rate, updated_at, version
`

func taxSuperRuleDst(rule *domain.TaxSuperRule) []any {
	return []any{
		&rule.ID, &rule.SuperRate, &rule.IntStudentWeeklyCap,
		&rule.Bracket1Max, &rule.Bracket1Rate,
		&rule.Bracket2Max, &rule.Bracket2Base, &rule.Bracket2Rate,
		&rule.Bracket3Base, &rule.Bracket3Rate,
		&rule.ABNWithholdingRate, &rule.UpdatedAt, &rule.Version,
	}
}

func (r *Repository) GetTaxSuperRule() (*domain.TaxSuperRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT ` + taxSuperRuleColumns + ` FROM tax_super_rules LIMIT 1`

	rule := &domain.TaxSuperRule{}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(taxSuperRuleDst(rule)...); err != nil {
		return nil, err
	}

	return rule, nil
}

// EnsureTaxSuperRule inserts defaults when no rule exists yet; an existing rule is left as it is.
func (r *Repository) EnsureTaxSuperRule(defaults domain.TaxSuperRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO tax_super_rules (
			super_rate, int_student_weekly_cap,
			bracket1_max, bracket1_rate,
			bracket2_max, bracket2_base, bracket2_rate,
			bracket3_base, bracket3_rate,
			abn_withholding_rate
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (singleton) DO NOTHING
	`

	args := []any{
		defaults.SuperRate, defaults.IntStudentWeeklyCap,
		defaults.Bracket1Max, defaults.Bracket1Rate,
		defaults.Bracket2Max, defaults.Bracket2Base, defaults.Bracket2Rate,
		defaults.Bracket3Base, defaults.Bracket3Rate,
		defaults.ABNWithholdingRate,
	}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

// UpdateTaxSuperRule writes every field of rule, guarded by its version.
func (r *Repository) UpdateTaxSuperRule(rule *domain.TaxSuperRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE tax_super_rules
		SET
			super_rate = $1,
			int_student_weekly_cap = $2,
			bracket1_max = $3,
			bracket1_rate = $4,
			bracket2_max = $5,
			bracket2_base = $6,
			bracket2_rate = $7,
			bracket3_base = $8,
			bracket3_rate = $9,
			abn_withholding_rate = $10,
			updated_at = now(),
			version = version + 1
		WHERE id = $11 AND version = $12
		RETURNING updated_at, version
	`

	args := []any{
		rule.SuperRate, rule.IntStudentWeeklyCap,
		rule.Bracket1Max, rule.Bracket1Rate,
		rule.Bracket2Max, rule.Bracket2Base, rule.Bracket2Rate,
		rule.Bracket3Base, rule.Bracket3Rate,
		rule.ABNWithholdingRate,
		rule.ID, rule.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&rule.UpdatedAt, &rule.Version); err != nil {
		return err
	}

	return nil
}
