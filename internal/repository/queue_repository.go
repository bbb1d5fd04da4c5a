package repository

import (
	"context"
	"database/sql"
	"fmt"

	"localboost/internal/interfaces"
	"localboost/internal/models"
)

type queueRepository struct {
	db *sql.DB
}

func NewQueueRepository(db *sql.DB) interfaces.QueueRepository {
	return &queueRepository{db: db}
}

// ReplaceForCampaign swaps the stored queue for a fresh evaluation result.
// Item IDs come from the engine's IDSource, not the database.
func (r *queueRepository) ReplaceForCampaign(ctx context.Context, campaignID string, items []models.SendQueueItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin queue replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM send_queue_items WHERE campaign_id = $1", campaignID); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	query := `
		INSERT INTO send_queue_items (
			id, campaign_id, customer_id, scheduled_at, variant, channel,
			status, skipped_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, item := range items {
		_, err := tx.ExecContext(
			ctx,
			query,
			item.ID,
			campaignID,
			item.CustomerID,
			item.ScheduledAt,
			item.Variant,
			item.Channel,
			item.Status,
			item.SkippedReason,
		)
		if err != nil {
			return fmt.Errorf("failed to insert queue item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

func (r *queueRepository) ListByCampaign(ctx context.Context, campaignID string) ([]models.SendQueueItem, error) {
	query := `
		SELECT id, campaign_id, customer_id, scheduled_at, variant, channel,
			status, skipped_reason
		FROM send_queue_items
		WHERE campaign_id = $1
		ORDER BY scheduled_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.SendQueueItem
	for rows.Next() {
		var item models.SendQueueItem
		err := rows.Scan(
			&item.ID,
			&item.CampaignID,
			&item.CustomerID,
			&item.ScheduledAt,
			&item.Variant,
			&item.Channel,
			&item.Status,
			&item.SkippedReason,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *queueRepository) UpdateStatus(ctx context.Context, id string, status models.QueueItemStatus) error {
	result, err := r.db.ExecContext(
		ctx,
		"UPDATE send_queue_items SET status = $1 WHERE id = $2",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update queue item status: %w", err)
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

// CountByStatus re-aggregates the funnel from stored queue items. This is
// the persistence-side view and intentionally independent of the engine's
// event-derived metrics.
func (r *queueRepository) CountByStatus(ctx context.Context, campaignID string) (map[models.QueueItemStatus]int, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT status, COUNT(*) FROM send_queue_items WHERE campaign_id = $1 GROUP BY status",
		campaignID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.QueueItemStatus]int)
	for rows.Next() {
		var status models.QueueItemStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
