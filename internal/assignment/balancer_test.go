package assignment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/psds-microservice/grievance-service/internal/assignment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoster struct {
	mock.Mock
}

func (m *MockRoster) AvailableOfficers(ctx context.Context, departmentID int64) ([]int64, error) {
	args := m.Called(ctx, departmentID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) CountActiveByOfficer(ctx context.Context, officerID int64) (int64, error) {
	args := m.Called(ctx, officerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestLeastLoadedOfficerPicksMinimum(t *testing.T) {
	roster := new(MockRoster)
	counts := new(MockCounter)
	roster.On("AvailableOfficers", mock.Anything, int64(10)).Return([]int64{1, 2, 3}, nil)
	counts.On("CountActiveByOfficer", mock.Anything, int64(1)).Return(int64(2), nil)
	counts.On("CountActiveByOfficer", mock.Anything, int64(2)).Return(int64(1), nil)
	counts.On("CountActiveByOfficer", mock.Anything, int64(3)).Return(int64(0), nil)

	b := assignment.NewBalancer(roster, counts)
	officerID, ok := b.LeastLoadedOfficer(context.Background(), 10)

	assert.True(t, ok)
	assert.Equal(t, int64(3), officerID)
}

// При равной нагрузке берётся первый в порядке реестра.
func TestLeastLoadedOfficerTieKeepsRosterOrder(t *testing.T) {
	roster := new(MockRoster)
	counts := new(MockCounter)
	roster.On("AvailableOfficers", mock.Anything, int64(10)).Return([]int64{5, 2, 8}, nil)
	for _, id := range []int64{5, 2, 8} {
		counts.On("CountActiveByOfficer", mock.Anything, id).Return(int64(1), nil)
	}

	b := assignment.NewBalancer(roster, counts)
	officerID, ok := b.LeastLoadedOfficer(context.Background(), 10)

	assert.True(t, ok)
	assert.Equal(t, int64(5), officerID)
}

func TestLeastLoadedOfficerEmptyRoster(t *testing.T) {
	roster := new(MockRoster)
	counts := new(MockCounter)
	roster.On("AvailableOfficers", mock.Anything, int64(10)).Return([]int64{}, nil)

	b := assignment.NewBalancer(roster, counts)
	_, ok := b.LeastLoadedOfficer(context.Background(), 10)

	assert.False(t, ok)
	counts.AssertNotCalled(t, "CountActiveByOfficer", mock.Anything, mock.Anything)
}

func TestLeastLoadedOfficerRosterUnavailable(t *testing.T) {
	roster := new(MockRoster)
	counts := new(MockCounter)
	roster.On("AvailableOfficers", mock.Anything, int64(10)).Return(nil, errors.New("user-service is down"))

	b := assignment.NewBalancer(roster, counts)
	_, ok := b.LeastLoadedOfficer(context.Background(), 10)

	assert.False(t, ok)
}

func TestLeastLoadedOfficerCountFailure(t *testing.T) {
	roster := new(MockRoster)
	counts := new(MockCounter)
	roster.On("AvailableOfficers", mock.Anything, int64(10)).Return([]int64{1, 2}, nil)
	counts.On("CountActiveByOfficer", mock.Anything, int64(1)).Return(int64(0), errors.New("db error"))

	b := assignment.NewBalancer(roster, counts)
	_, ok := b.LeastLoadedOfficer(context.Background(), 10)

	assert.False(t, ok)
}
