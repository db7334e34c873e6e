package quoterepo

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/quote"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuoteRepository implements ports.QuoteRepository using GORM.
type GormQuoteRepository struct {
	db *gorm.DB
}

func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// Add saves a new quote.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the status of an existing quote. Everything else is immutable.
func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&QuoteDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a quote by ID.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpenExpiredBefore retrieves Open quotes past their deadline, oldest first.
func (r *GormQuoteRepository) GetAllOpenExpiredBefore(ctx context.Context, now time.Time) ([]*quote.Quote, error) {
	var dtos []QuoteDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", int(quote.Open), now.UTC()).
		Order("expires_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}
