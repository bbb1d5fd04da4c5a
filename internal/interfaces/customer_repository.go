// internal/interfaces/customer_repository.go
package interfaces

import (
	"context"

	"localboost/internal/models"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	BulkCreate(ctx context.Context, customers []*models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	ListByCampaign(ctx context.Context, campaignID string, limit, offset int) ([]models.Customer, error)
	Update(ctx context.Context, id string, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}
