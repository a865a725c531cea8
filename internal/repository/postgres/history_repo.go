package postgres

import (
	"context"

	"github.com/psds-microservice/grievance-service/internal/model"
	"gorm.io/gorm"
)

type HistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// ListByGrievance — история переходов, новые сверху. Запись идёт только
// через GrievanceRepo.Create/Transition, поэтому тут лишь чтение.
func (r *HistoryRepo) ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.StatusHistory, error) {
	var items []model.StatusHistory
	err := r.db.WithContext(ctx).
		Where("grievance_id = ?", grievanceID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
