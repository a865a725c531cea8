// Package repository описывает контракты хранилища. Реализация в
// подпакете postgres; сервисы зависят только от интерфейсов.
package repository

import (
	"context"
	"time"

	"github.com/psds-microservice/grievance-service/internal/model"
)

// GrievanceFilter — необязательные условия листинга.
type GrievanceFilter struct {
	CitizenID    *int64
	OfficerID    *int64
	DepartmentID *int64
	CategoryID   *int64
	Status       *model.GrievanceStatus
}

type GrievanceRepository interface {
	// Create выдаёт номер из sequence, пишет обращение и первую строку
	// истории одной транзакцией.
	Create(ctx context.Context, g *model.Grievance, h *model.StatusHistory) error
	GetByID(ctx context.Context, id uint64) (*model.Grievance, error)
	GetByNumber(ctx context.Context, number string) (*model.Grievance, error)
	// Transition атомарно применяет мутацию и строку истории. UPDATE
	// ограничен условием status = h.OldStatus: если статус уже ушёл
	// (конкурентное действие), возвращается errs.ErrInvalidState и
	// ничего не записывается.
	Transition(ctx context.Context, g *model.Grievance, h *model.StatusHistory) error

	List(ctx context.Context, f GrievanceFilter, limit, offset int) ([]model.Grievance, int64, error)
	ListByStatus(ctx context.Context, status model.GrievanceStatus) ([]model.Grievance, error)
	// DueForEscalation — RESOLVED с истёкшим дедлайном автоэскалации.
	DueForEscalation(ctx context.Context, now time.Time) ([]model.Grievance, error)

	CountActiveByOfficer(ctx context.Context, officerID int64) (int64, error)
	CountByOfficerAndStatus(ctx context.Context, officerID int64, status model.GrievanceStatus) (int64, error)
	IDsByOfficerAndStatus(ctx context.Context, officerID int64, status model.GrievanceStatus) ([]uint64, error)
	CountByDepartment(ctx context.Context, departmentID int64) (int64, error)
	CountByDepartmentAndStatus(ctx context.Context, departmentID int64, status model.GrievanceStatus) (int64, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	CountByCategoryAndStatus(ctx context.Context, categoryID int64, status model.GrievanceStatus) (int64, error)
}

type HistoryRepository interface {
	ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.StatusHistory, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.Comment, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	GetByID(ctx context.Context, id uint64) (*model.Document, error)
	ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.Document, error)
	Delete(ctx context.Context, id uint64) error
}

type DepartmentRepository interface {
	ListActive(ctx context.Context) ([]model.Department, error)
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	Create(ctx context.Context, d *model.Department) error
	Save(ctx context.Context, d *model.Department) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]model.Category, error)
	ListActiveByDepartment(ctx context.Context, departmentID int64) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Save(ctx context.Context, c *model.Category) error
	ExistsInDepartment(ctx context.Context, departmentID int64, name string) (bool, error)
}
