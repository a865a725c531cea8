package service_test

import (
	"context"
	"time"

	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/psds-microservice/grievance-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockGrievanceRepo struct {
	mock.Mock
}

func (m *MockGrievanceRepo) Create(ctx context.Context, g *model.Grievance, h *model.StatusHistory) error {
	args := m.Called(ctx, g, h)
	return args.Error(0)
}

func (m *MockGrievanceRepo) GetByID(ctx context.Context, id uint64) (*model.Grievance, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*model.Grievance); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrievanceRepo) GetByNumber(ctx context.Context, number string) (*model.Grievance, error) {
	args := m.Called(ctx, number)
	if g, ok := args.Get(0).(*model.Grievance); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrievanceRepo) Transition(ctx context.Context, g *model.Grievance, h *model.StatusHistory) error {
	args := m.Called(ctx, g, h)
	return args.Error(0)
}

func (m *MockGrievanceRepo) List(ctx context.Context, f repository.GrievanceFilter, limit, offset int) ([]model.Grievance, int64, error) {
	args := m.Called(ctx, f, limit, offset)
	items, _ := args.Get(0).([]model.Grievance)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockGrievanceRepo) ListByStatus(ctx context.Context, status model.GrievanceStatus) ([]model.Grievance, error) {
	args := m.Called(ctx, status)
	items, _ := args.Get(0).([]model.Grievance)
	return items, args.Error(1)
}

func (m *MockGrievanceRepo) DueForEscalation(ctx context.Context, now time.Time) ([]model.Grievance, error) {
	args := m.Called(ctx, now)
	items, _ := args.Get(0).([]model.Grievance)
	return items, args.Error(1)
}

func (m *MockGrievanceRepo) CountActiveByOfficer(ctx context.Context, officerID int64) (int64, error) {
	args := m.Called(ctx, officerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGrievanceRepo) CountByOfficerAndStatus(ctx context.Context, officerID int64, status model.GrievanceStatus) (int64, error) {
	args := m.Called(ctx, officerID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGrievanceRepo) IDsByOfficerAndStatus(ctx context.Context, officerID int64, status model.GrievanceStatus) ([]uint64, error) {
	args := m.Called(ctx, officerID, status)
	ids, _ := args.Get(0).([]uint64)
	return ids, args.Error(1)
}

func (m *MockGrievanceRepo) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGrievanceRepo) CountByDepartmentAndStatus(ctx context.Context, departmentID int64, status model.GrievanceStatus) (int64, error) {
	args := m.Called(ctx, departmentID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGrievanceRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGrievanceRepo) CountByCategoryAndStatus(ctx context.Context, categoryID int64, status model.GrievanceStatus) (int64, error) {
	args := m.Called(ctx, categoryID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.StatusHistory, error) {
	args := m.Called(ctx, grievanceID)
	items, _ := args.Get(0).([]model.StatusHistory)
	return items, args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepo) ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.Comment, error) {
	args := m.Called(ctx, grievanceID)
	items, _ := args.Get(0).([]model.Comment)
	return items, args.Error(1)
}

type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, d *model.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, id uint64) (*model.Document, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepo) ListByGrievance(ctx context.Context, grievanceID uint64) ([]model.Document, error) {
	args := m.Called(ctx, grievanceID)
	items, _ := args.Get(0).([]model.Document)
	return items, args.Error(1)
}

func (m *MockDocumentRepo) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDepartmentRepo struct {
	mock.Mock
}

func (m *MockDepartmentRepo) ListActive(ctx context.Context) ([]model.Department, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Department)
	return items, args.Error(1)
}

func (m *MockDepartmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDepartmentRepo) Create(ctx context.Context, d *model.Department) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepartmentRepo) Save(ctx context.Context, d *model.Department) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) ListActive(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *MockCategoryRepo) ListActiveByDepartment(ctx context.Context, departmentID int64) ([]model.Category, error) {
	args := m.Called(ctx, departmentID)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepo) Save(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepo) ExistsInDepartment(ctx context.Context, departmentID int64, name string) (bool, error) {
	args := m.Called(ctx, departmentID, name)
	return args.Bool(0), args.Error(1)
}

type MockBalancer struct {
	mock.Mock
}

func (m *MockBalancer) LeastLoadedOfficer(ctx context.Context, departmentID int64) (int64, bool) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(int64), args.Bool(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) SendNotification(ctx context.Context, userID int64, subject, body string) {
	m.Called(ctx, userID, subject, body)
}
