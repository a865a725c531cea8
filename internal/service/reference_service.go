package service

import (
	"context"
	"fmt"

	"github.com/psds-microservice/grievance-service/internal/errs"
	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/psds-microservice/grievance-service/internal/repository"
)

// ReferenceServicer — справочники департаментов и категорий.
type ReferenceServicer interface {
	Departments(ctx context.Context) ([]model.Department, error)
	Department(ctx context.Context, id int64) (*model.Department, error)
	CreateDepartment(ctx context.Context, name, description, contactEmail string) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id int64, name, description, contactEmail string) (*model.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	Categories(ctx context.Context) ([]model.Category, error)
	CategoriesByDepartment(ctx context.Context, departmentID int64) ([]model.Category, error)
	CreateCategory(ctx context.Context, departmentID int64, name, description string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type ReferenceService struct {
	departments repository.DepartmentRepository
	categories  repository.CategoryRepository
}

func NewReferenceService(departments repository.DepartmentRepository, categories repository.CategoryRepository) *ReferenceService {
	return &ReferenceService{departments: departments, categories: categories}
}

func (s *ReferenceService) Departments(ctx context.Context) ([]model.Department, error) {
	return s.departments.ListActive(ctx)
}

func (s *ReferenceService) Department(ctx context.Context, id int64) (*model.Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *ReferenceService) CreateDepartment(ctx context.Context, name, description, contactEmail string) (*model.Department, error) {
	exists, err := s.departments.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: department %q", errs.ErrDuplicateName, name)
	}
	d := &model.Department{
		Name:         name,
		Description:  description,
		ContactEmail: contactEmail,
		IsActive:     true,
	}
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}

func (s *ReferenceService) UpdateDepartment(ctx context.Context, id int64, name, description, contactEmail string) (*model.Department, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Name != name {
		exists, err := s.departments.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("update department: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: department %q", errs.ErrDuplicateName, name)
		}
	}
	d.Name = name
	d.Description = description
	d.ContactEmail = contactEmail
	if err := s.departments.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	return d, nil
}

// DeleteDepartment — мягкое удаление, строка остаётся для старых обращений.
func (s *ReferenceService) DeleteDepartment(ctx context.Context, id int64) error {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	d.IsActive = false
	return s.departments.Save(ctx, d)
}

func (s *ReferenceService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.ListActive(ctx)
}

func (s *ReferenceService) CategoriesByDepartment(ctx context.Context, departmentID int64) ([]model.Category, error) {
	return s.categories.ListActiveByDepartment(ctx, departmentID)
}

func (s *ReferenceService) CreateCategory(ctx context.Context, departmentID int64, name, description string) (*model.Category, error) {
	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	exists, err := s.categories.ExistsInDepartment(ctx, departmentID, name)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: category %q in department %d", errs.ErrDuplicateName, name, departmentID)
	}
	c := &model.Category{
		DepartmentID: departmentID,
		Name:         name,
		Description:  description,
		IsActive:     true,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *ReferenceService) DeleteCategory(ctx context.Context, id int64) error {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.IsActive = false
	return s.categories.Save(ctx, c)
}
