package postgres

import (
	"context"

	"github.com/psds-microservice/grievance-service/internal/model"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepo) ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.Comment, error) {
	var items []model.Comment
	err := r.db.WithContext(ctx).
		Where("grievance_id = ?", grievanceID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
