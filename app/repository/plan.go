package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vibast-solutions/ms-go-website/app/entity"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// ListPlans returns the published plans ordered for display. Features are stored
// as a JSON array of entity.FeatureEntry.
func (r *PlanRepository) ListPlans(ctx context.Context) ([]entity.Plan, error) {
	query := `
		SELECT id, name, description, monthly_price, annual_price, popular,
		       cta_label, cta_href, features, sort_order, created_at, updated_at
		FROM plans
		WHERE published = 1
		ORDER BY sort_order ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Plan, 0)
	for rows.Next() {
		var item entity.Plan
		if err := scanPlan(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanPlan(scanner rowScanner, item *entity.Plan) error {
	var description sql.NullString
	var ctaLabel sql.NullString
	var ctaHref sql.NullString
	var features sql.NullString

	err := scanner.Scan(
		&item.ID,
		&item.Name,
		&description,
		&item.MonthlyPrice,
		&item.AnnualPrice,
		&item.Popular,
		&ctaLabel,
		&ctaHref,
		&features,
		&item.SortOrder,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if description.Valid {
		item.Description = description.String
	}
	if ctaLabel.Valid {
		item.CTA.Label = ctaLabel.String
	}
	if ctaHref.Valid {
		item.CTA.Href = ctaHref.String
	}
	if features.Valid && features.String != "" {
		if err := json.Unmarshal([]byte(features.String), &item.Features); err != nil {
			return fmt.Errorf("decode features of plan %d: %w", item.ID, err)
		}
	}

	return nil
}
