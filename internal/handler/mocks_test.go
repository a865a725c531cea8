package handler_test

import (
	"context"

	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/psds-microservice/grievance-service/internal/repository"
	"github.com/psds-microservice/grievance-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockGrievanceService struct {
	mock.Mock
}

func (m *MockGrievanceService) Lodge(ctx context.Context, in service.LodgeInput) (*model.Grievance, error) {
	args := m.Called(ctx, in)
	if g, ok := args.Get(0).(*model.Grievance); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrievanceService) Assign(ctx context.Context, grievanceID uint64, officerID int64) error {
	args := m.Called(ctx, grievanceID, officerID)
	return args.Error(0)
}

func (m *MockGrievanceService) AutoAssign(ctx context.Context, grievanceID uint64) (int64, error) {
	args := m.Called(ctx, grievanceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGrievanceService) UpdateStatus(ctx context.Context, grievanceID uint64, newStatus model.GrievanceStatus, remarks string, actorID int64) error {
	args := m.Called(ctx, grievanceID, newStatus, remarks, actorID)
	return args.Error(0)
}

func (m *MockGrievanceService) Escalate(ctx context.Context, grievanceID uint64, citizenID int64) error {
	args := m.Called(ctx, grievanceID, citizenID)
	return args.Error(0)
}

func (m *MockGrievanceService) Withdraw(ctx context.Context, grievanceID uint64, citizenID int64) error {
	args := m.Called(ctx, grievanceID, citizenID)
	return args.Error(0)
}

func (m *MockGrievanceService) GetByID(ctx context.Context, grievanceID uint64) (*service.GrievanceDetail, error) {
	args := m.Called(ctx, grievanceID)
	if d, ok := args.Get(0).(*service.GrievanceDetail); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrievanceService) History(ctx context.Context, grievanceID uint64) ([]model.StatusHistory, error) {
	args := m.Called(ctx, grievanceID)
	items, _ := args.Get(0).([]model.StatusHistory)
	return items, args.Error(1)
}

func (m *MockGrievanceService) List(ctx context.Context, f repository.GrievanceFilter, limit, offset int) ([]model.Grievance, int64, error) {
	args := m.Called(ctx, f, limit, offset)
	items, _ := args.Get(0).([]model.Grievance)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockGrievanceService) AddComment(ctx context.Context, grievanceID uint64, senderID int64, role model.Role, message string, isInternal bool) (*model.Comment, error) {
	args := m.Called(ctx, grievanceID, senderID, role, message, isInternal)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrievanceService) Comments(ctx context.Context, grievanceID uint64) ([]model.Comment, error) {
	args := m.Called(ctx, grievanceID)
	items, _ := args.Get(0).([]model.Comment)
	return items, args.Error(1)
}

func (m *MockGrievanceService) Dashboard(ctx context.Context, officerID int64) (*service.DashboardStats, error) {
	args := m.Called(ctx, officerID)
	if s, ok := args.Get(0).(*service.DashboardStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrievanceService) DepartmentReport(ctx context.Context) (map[string]map[string]int64, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(map[string]map[string]int64)
	return report, args.Error(1)
}

func (m *MockGrievanceService) CategoryReport(ctx context.Context) (map[string]map[string]int64, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(map[string]map[string]int64)
	return report, args.Error(1)
}

func (m *MockGrievanceService) AverageResolutionTime(ctx context.Context) (*service.ResolutionReport, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).(*service.ResolutionReport); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGrievanceService) DueForEscalation(ctx context.Context) ([]model.Grievance, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Grievance)
	return items, args.Error(1)
}

func (m *MockGrievanceService) AutoEscalate(ctx context.Context, g *model.Grievance) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
