package postgres

import (
	"context"
	"errors"

	"github.com/psds-microservice/grievance-service/internal/errs"
	"github.com/psds-microservice/grievance-service/internal/model"
	"gorm.io/gorm"
)

// Справочники: департаменты и категории. Удаление мягкое (is_active=false),
// строки не исчезают, чтобы старые обращения не теряли ссылки.

type DepartmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

func (r *DepartmentRepo) ListActive(ctx context.Context) ([]model.Department, error) {
	var items []model.Department
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var d model.Department
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepo) Create(ctx context.Context, d *model.Department) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *DepartmentRepo) Save(ctx context.Context, d *model.Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Department{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) ListActive(ctx context.Context) ([]model.Category, error) {
	var items []model.Category
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *CategoryRepo) ListActiveByDepartment(ctx context.Context, departmentID int64) ([]model.Category, error) {
	var items []model.Category
	err := r.db.WithContext(ctx).
		Where("department_id = ? AND is_active = ?", departmentID, true).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *CategoryRepo) Save(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryRepo) ExistsInDepartment(ctx context.Context, departmentID int64, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("department_id = ? AND name = ?", departmentID, name).
		Count(&n).Error
	return n > 0, err
}
