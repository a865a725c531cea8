package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/psds-microservice/grievance-service/internal/errs"
	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/psds-microservice/grievance-service/internal/repository"
	"gorm.io/gorm"
)

type GrievanceRepo struct {
	db *gorm.DB
}

func NewGrievanceRepo(db *gorm.DB) *GrievanceRepo {
	return &GrievanceRepo{db: db}
}

func (r *GrievanceRepo) Create(ctx context.Context, g *model.Grievance, h *model.StatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq int64
		if err := tx.Raw("SELECT nextval('grievance_number_seq')").Scan(&seq).Error; err != nil {
			return err
		}
		g.GrievanceNumber = model.FormatGrievanceNumber(time.Now().Year(), seq)
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		h.GrievanceID = g.ID
		return tx.Create(h).Error
	})
}

func (r *GrievanceRepo) GetByID(ctx context.Context, id uint64) (*model.Grievance, error) {
	var g model.Grievance
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrGrievanceNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GrievanceRepo) GetByNumber(ctx context.Context, number string) (*model.Grievance, error) {
	var g model.Grievance
	if err := r.db.WithContext(ctx).Where("grievance_number = ?", number).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrGrievanceNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Transition пишет мутацию и строку истории одной транзакцией. Условие по
// старому статусу защищает от потерянных обновлений: проигравший
// конкурентный переход получает ErrInvalidState, история не двоится.
func (r *GrievanceRepo) Transition(ctx context.Context, g *model.Grievance, h *model.StatusHistory) error {
	if h.OldStatus == nil {
		return errors.New("transition requires old status")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Grievance{}).
			Where("id = ? AND status = ?", g.ID, *h.OldStatus).
			Updates(map[string]interface{}{
				"status":                     g.Status,
				"assigned_officer_id":        g.AssignedOfficerID,
				"escalated_to_supervisor_id": g.EscalatedToSupervisorID,
				"priority":                   g.Priority,
				"resolution_remarks":         g.ResolutionRemarks,
				"resolved_at":                g.ResolvedAt,
				"closed_at":                  g.ClosedAt,
				"escalated_at":               g.EscalatedAt,
				"auto_escalation_deadline":   g.AutoEscalationDeadline,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrInvalidState
		}
		h.GrievanceID = g.ID
		return tx.Create(h).Error
	})
}

func (r *GrievanceRepo) List(ctx context.Context, f repository.GrievanceFilter, limit, offset int) ([]model.Grievance, int64, error) {
	var items []model.Grievance
	var total int64
	tx := r.db.WithContext(ctx).Model(&model.Grievance{})
	if f.CitizenID != nil {
		tx = tx.Where("citizen_id = ?", *f.CitizenID)
	}
	if f.OfficerID != nil {
		tx = tx.Where("assigned_officer_id = ?", *f.OfficerID)
	}
	if f.DepartmentID != nil {
		tx = tx.Where("department_id = ?", *f.DepartmentID)
	}
	if f.CategoryID != nil {
		tx = tx.Where("category_id = ?", *f.CategoryID)
	}
	if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if err := tx.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GrievanceRepo) ListByStatus(ctx context.Context, status model.GrievanceStatus) ([]model.Grievance, error) {
	var items []model.Grievance
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&items).Error
	return items, err
}

func (r *GrievanceRepo) DueForEscalation(ctx context.Context, now time.Time) ([]model.Grievance, error) {
	var items []model.Grievance
	err := r.db.WithContext(ctx).
		Where("status = ? AND auto_escalation_deadline IS NOT NULL AND auto_escalation_deadline < ?", model.StatusResolved, now).
		Find(&items).Error
	return items, err
}

func (r *GrievanceRepo) CountActiveByOfficer(ctx context.Context, officerID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("assigned_officer_id = ? AND status NOT IN ?", officerID,
			[]model.GrievanceStatus{model.StatusClosed, model.StatusResolved}).
		Count(&n).Error
	return n, err
}

func (r *GrievanceRepo) CountByOfficerAndStatus(ctx context.Context, officerID int64, status model.GrievanceStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("assigned_officer_id = ? AND status = ?", officerID, status).
		Count(&n).Error
	return n, err
}

func (r *GrievanceRepo) IDsByOfficerAndStatus(ctx context.Context, officerID int64, status model.GrievanceStatus) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("assigned_officer_id = ? AND status = ?", officerID, status).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *GrievanceRepo) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("department_id = ?", departmentID).Count(&n).Error
	return n, err
}

func (r *GrievanceRepo) CountByDepartmentAndStatus(ctx context.Context, departmentID int64, status model.GrievanceStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("department_id = ? AND status = ?", departmentID, status).Count(&n).Error
	return n, err
}

func (r *GrievanceRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *GrievanceRepo) CountByCategoryAndStatus(ctx context.Context, categoryID int64, status model.GrievanceStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("category_id = ? AND status = ?", categoryID, status).Count(&n).Error
	return n, err
}
