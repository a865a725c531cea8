package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardAggregatesOfficerCounts(t *testing.T) {
	svc, deps := newTestService()
	officerID := int64(7)
	deps.grievances.On("CountByOfficerAndStatus", mock.Anything, officerID, model.StatusAssigned).Return(int64(3), nil)
	deps.grievances.On("CountByOfficerAndStatus", mock.Anything, officerID, model.StatusInReview).Return(int64(2), nil)
	deps.grievances.On("CountByOfficerAndStatus", mock.Anything, officerID, model.StatusResolved).Return(int64(5), nil)
	deps.grievances.On("CountByOfficerAndStatus", mock.Anything, officerID, model.StatusClosed).Return(int64(11), nil)
	deps.grievances.On("IDsByOfficerAndStatus", mock.Anything, officerID, model.StatusAssigned).Return([]uint64{1, 4, 9}, nil)

	stats, err := svc.Dashboard(context.Background(), officerID)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), stats.OpenIssues, "open = assigned + in review")
	assert.Equal(t, int64(3), stats.AssignedToMe)
	assert.Equal(t, []uint64{1, 4, 9}, stats.AssignedToMeIDs)
	assert.Equal(t, int64(2), stats.InReview)
	assert.Equal(t, int64(5), stats.Resolved)
	assert.Equal(t, int64(11), stats.Closed)
}

func TestDepartmentReport(t *testing.T) {
	svc, deps := newTestService()
	deps.departments.On("ListActive", mock.Anything).Return([]model.Department{
		{ID: 10, Name: "Water Supply"},
		{ID: 11, Name: "Roads"},
	}, nil)
	for _, deptID := range []int64{10, 11} {
		deps.grievances.On("CountByDepartment", mock.Anything, deptID).Return(int64(deptID), nil)
		deps.grievances.On("CountByDepartmentAndStatus", mock.Anything, deptID, model.StatusAssigned).Return(int64(1), nil)
		deps.grievances.On("CountByDepartmentAndStatus", mock.Anything, deptID, model.StatusResolved).Return(int64(2), nil)
		deps.grievances.On("CountByDepartmentAndStatus", mock.Anything, deptID, model.StatusClosed).Return(int64(3), nil)
	}

	report, err := svc.DepartmentReport(context.Background())

	assert.NoError(t, err)
	assert.Len(t, report, 2)
	assert.Equal(t, int64(10), report["Water Supply"]["total"])
	assert.Equal(t, int64(1), report["Roads"]["open"])
	assert.Equal(t, int64(3), report["Roads"]["closed"])
}

func TestAverageResolutionTime(t *testing.T) {
	svc, deps := newTestService()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	after24 := base.Add(24 * time.Hour)
	after48 := base.Add(48 * time.Hour)
	deps.grievances.On("ListByStatus", mock.Anything, model.StatusResolved).Return([]model.Grievance{
		{ID: 1, Status: model.StatusResolved, CreatedAt: base, ResolvedAt: &after24},
		{ID: 2, Status: model.StatusResolved, CreatedAt: base, ResolvedAt: &after48},
	}, nil)

	report, err := svc.AverageResolutionTime(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalResolved)
	assert.InDelta(t, 36.0, report.AverageHours, 0.001)
}

func TestAverageResolutionTimeEmpty(t *testing.T) {
	svc, deps := newTestService()
	deps.grievances.On("ListByStatus", mock.Anything, model.StatusResolved).Return([]model.Grievance{}, nil)

	report, err := svc.AverageResolutionTime(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, report.TotalResolved)
	assert.Zero(t, report.AverageHours)
}
