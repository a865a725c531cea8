package postgres

import (
	"context"
	"errors"

	"github.com/psds-microservice/grievance-service/internal/errs"
	"github.com/psds-microservice/grievance-service/internal/model"
	"gorm.io/gorm"
)

type DocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepo) GetByID(ctx context.Context, id uint64) (*model.Document, error) {
	var d model.Document
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepo) ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.Document, error) {
	var items []model.Document
	err := r.db.WithContext(ctx).
		Where("grievance_id = ?", grievanceID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *DocumentRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Document{}, id).Error
}
