package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"localboost/internal/interfaces"
	"localboost/internal/models"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) interfaces.CustomerRepository {
	return &customerRepository{db: db}
}

const insertCustomerQuery = `
	INSERT INTO customers (
		campaign_id, name, phone, email, tags, last_visit_date,
		service_type, job_id, opted_out
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
`

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	tags := customer.Tags
	if tags == nil {
		tags = []string{}
	}

	return r.db.QueryRowContext(
		ctx,
		insertCustomerQuery,
		customer.CampaignID,
		customer.Name,
		customer.Phone,
		customer.Email,
		pq.Array(tags),
		customer.LastVisitDate,
		customer.ServiceType,
		customer.JobID,
		customer.OptedOut,
	).Scan(&customer.ID, &customer.CreatedAt)
}

// BulkCreate inserts an imported batch in one transaction so a partial
// import never lands.
func (r *customerRepository) BulkCreate(ctx context.Context, customers []*models.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, customer := range customers {
		tags := customer.Tags
		if tags == nil {
			tags = []string{}
		}
		err := tx.QueryRowContext(
			ctx,
			insertCustomerQuery,
			customer.CampaignID,
			customer.Name,
			customer.Phone,
			customer.Email,
			pq.Array(tags),
			customer.LastVisitDate,
			customer.ServiceType,
			customer.JobID,
			customer.OptedOut,
		).Scan(&customer.ID, &customer.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import customer %q: %w", customer.Name, err)
		}
	}

	return tx.Commit()
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `
		SELECT id, campaign_id, name, phone, email, tags, last_visit_date,
			service_type, job_id, opted_out, created_at
		FROM customers
		WHERE id = $1
	`

	var c models.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.CampaignID,
		&c.Name,
		&c.Phone,
		&c.Email,
		pq.Array(&c.Tags),
		&c.LastVisitDate,
		&c.ServiceType,
		&c.JobID,
		&c.OptedOut,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}

	return &c, nil
}

func (r *customerRepository) ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]models.Customer, error) {
	query := `
		SELECT id, campaign_id, name, phone, email, tags, last_visit_date,
			service_type, job_id, opted_out, created_at
		FROM customers
		WHERE campaign_id = $1
		ORDER BY created_at ASC
	`

	args := []interface{}{campaignID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
		if offset > 0 {
			query += " OFFSET $3"
			args = append(args, offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(
			&c.ID,
			&c.CampaignID,
			&c.Name,
			&c.Phone,
			&c.Email,
			pq.Array(&c.Tags),
			&c.LastVisitDate,
			&c.ServiceType,
			&c.JobID,
			&c.OptedOut,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, id string, customer *models.Customer) error {
	tags := customer.Tags
	if tags == nil {
		tags = []string{}
	}

	query := `
		UPDATE customers
		SET name = $1,
			phone = $2,
			email = $3,
			tags = $4,
			last_visit_date = $5,
			service_type = $6,
			job_id = $7,
			opted_out = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		customer.Name,
		customer.Phone,
		customer.Email,
		pq.Array(tags),
		customer.LastVisitDate,
		customer.ServiceType,
		customer.JobID,
		customer.OptedOut,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
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

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
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
