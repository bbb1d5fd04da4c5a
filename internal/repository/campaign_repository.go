package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"localboost/internal/interfaces"
	"localboost/internal/models"
)

type campaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) interfaces.CampaignRepository {
	return &campaignRepository{db: db}
}

const campaignColumns = `
	id, business_name, business_type, platform, review_link, language, tone,
	brand_voice, trigger_type, send_delay_hours, follow_up_enabled,
	follow_up_delay_days, frequency_cap_days, quiet_start, quiet_end,
	created_at, updated_at
`

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	query := `
		INSERT INTO campaigns (
			business_name, business_type, platform, review_link, language,
			tone, brand_voice, trigger_type, send_delay_hours,
			follow_up_enabled, follow_up_delay_days, frequency_cap_days,
			quiet_start, quiet_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		campaign.BusinessName,
		campaign.BusinessType,
		campaign.Platform,
		campaign.ReviewLink,
		campaign.Language,
		campaign.Tone,
		campaign.BrandVoice,
		campaign.Rules.TriggerType,
		campaign.Rules.SendDelayHours,
		campaign.Rules.FollowUpEnabled,
		campaign.Rules.FollowUpDelayDays,
		campaign.Rules.FrequencyCapDays,
		campaign.Rules.QuietHours.Start,
		campaign.Rules.QuietHours.End,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
}

func scanCampaign(scanner interface{ Scan(...any) error }) (*models.Campaign, error) {
	var c models.Campaign
	err := scanner.Scan(
		&c.ID,
		&c.BusinessName,
		&c.BusinessType,
		&c.Platform,
		&c.ReviewLink,
		&c.Language,
		&c.Tone,
		&c.BrandVoice,
		&c.Rules.TriggerType,
		&c.Rules.SendDelayHours,
		&c.Rules.FollowUpEnabled,
		&c.Rules.FollowUpDelayDays,
		&c.Rules.FrequencyCapDays,
		&c.Rules.QuietHours.Start,
		&c.Rules.QuietHours.End,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return campaign, nil
}

// List retrieves campaigns matching the filter, newest first.
func (r *campaignRepository) List(ctx context.Context, filter interfaces.CampaignFilter) ([]*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`

	var args []interface{}
	var whereClauses []string
	argPos := 1

	if filter.Platform != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("platform = $%d", argPos))
		args = append(args, filter.Platform)
		argPos++
	}

	if filter.BusinessType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("business_type = $%d", argPos))
		args = append(args, filter.BusinessType)
		argPos++
	}

	if !filter.CreatedAfter.IsZero() {
		whereClauses = append(whereClauses, fmt.Sprintf("created_at >= $%d", argPos))
		args = append(args, filter.CreatedAfter)
		argPos++
	}

	if len(whereClauses) > 0 {
		query += " AND " + strings.Join(whereClauses, " AND ")
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
		argPos++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) Update(ctx context.Context, id string, campaign *models.Campaign) error {
	query := `
		UPDATE campaigns
		SET business_name = $1,
			business_type = $2,
			platform = $3,
			review_link = $4,
			language = $5,
			tone = $6,
			brand_voice = $7,
			trigger_type = $8,
			send_delay_hours = $9,
			follow_up_enabled = $10,
			follow_up_delay_days = $11,
			frequency_cap_days = $12,
			quiet_start = $13,
			quiet_end = $14,
			updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $15
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		campaign.BusinessName,
		campaign.BusinessType,
		campaign.Platform,
		campaign.ReviewLink,
		campaign.Language,
		campaign.Tone,
		campaign.BrandVoice,
		campaign.Rules.TriggerType,
		campaign.Rules.SendDelayHours,
		campaign.Rules.FollowUpEnabled,
		campaign.Rules.FollowUpDelayDays,
		campaign.Rules.FrequencyCapDays,
		campaign.Rules.QuietHours.Start,
		campaign.Rules.QuietHours.End,
		id,
	).Scan(&campaign.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	return nil
}

// Delete removes a campaign; customers, events, and queue items cascade.
func (r *campaignRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM campaigns WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
