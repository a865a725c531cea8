package service

import (
	"context"
	"fmt"

	"github.com/psds-microservice/grievance-service/internal/model"
)

// DashboardStats — сводка по офицеру для его рабочего стола.
type DashboardStats struct {
	OpenIssues      int64    `json:"open_issues"`
	AssignedToMe    int64    `json:"assigned_to_me"`
	AssignedToMeIDs []uint64 `json:"assigned_to_me_ids"`
	InReview        int64    `json:"in_review"`
	Resolved        int64    `json:"resolved"`
	Closed          int64    `json:"closed"`
}

type ResolutionReport struct {
	AverageHours  float64 `json:"average_hours"`
	TotalResolved int     `json:"total_resolved"`
}

func (s *GrievanceService) Dashboard(ctx context.Context, officerID int64) (*DashboardStats, error) {
	assigned, err := s.grievances.CountByOfficerAndStatus(ctx, officerID, model.StatusAssigned)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	inReview, err := s.grievances.CountByOfficerAndStatus(ctx, officerID, model.StatusInReview)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	resolved, err := s.grievances.CountByOfficerAndStatus(ctx, officerID, model.StatusResolved)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	closed, err := s.grievances.CountByOfficerAndStatus(ctx, officerID, model.StatusClosed)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	assignedIDs, err := s.grievances.IDsByOfficerAndStatus(ctx, officerID, model.StatusAssigned)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &DashboardStats{
		OpenIssues:      assigned + inReview,
		AssignedToMe:    assigned,
		AssignedToMeIDs: assignedIDs,
		InReview:        inReview,
		Resolved:        resolved,
		Closed:          closed,
	}, nil
}

// DepartmentReport — срез по каждому активному департаменту:
// total/open/resolved/closed.
func (s *GrievanceService) DepartmentReport(ctx context.Context) (map[string]map[string]int64, error) {
	departments, err := s.departments.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("department report: %w", err)
	}
	report := make(map[string]map[string]int64, len(departments))
	for _, dept := range departments {
		total, err := s.grievances.CountByDepartment(ctx, dept.ID)
		if err != nil {
			return nil, fmt.Errorf("department report: %w", err)
		}
		open, err := s.grievances.CountByDepartmentAndStatus(ctx, dept.ID, model.StatusAssigned)
		if err != nil {
			return nil, fmt.Errorf("department report: %w", err)
		}
		resolved, err := s.grievances.CountByDepartmentAndStatus(ctx, dept.ID, model.StatusResolved)
		if err != nil {
			return nil, fmt.Errorf("department report: %w", err)
		}
		closed, err := s.grievances.CountByDepartmentAndStatus(ctx, dept.ID, model.StatusClosed)
		if err != nil {
			return nil, fmt.Errorf("department report: %w", err)
		}
		report[dept.Name] = map[string]int64{
			"total":    total,
			"open":     open,
			"resolved": resolved,
			"closed":   closed,
		}
	}
	return report, nil
}

func (s *GrievanceService) CategoryReport(ctx context.Context) (map[string]map[string]int64, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("category report: %w", err)
	}
	report := make(map[string]map[string]int64, len(categories))
	for _, cat := range categories {
		total, err := s.grievances.CountByCategory(ctx, cat.ID)
		if err != nil {
			return nil, fmt.Errorf("category report: %w", err)
		}
		open, err := s.grievances.CountByCategoryAndStatus(ctx, cat.ID, model.StatusAssigned)
		if err != nil {
			return nil, fmt.Errorf("category report: %w", err)
		}
		resolved, err := s.grievances.CountByCategoryAndStatus(ctx, cat.ID, model.StatusResolved)
		if err != nil {
			return nil, fmt.Errorf("category report: %w", err)
		}
		closed, err := s.grievances.CountByCategoryAndStatus(ctx, cat.ID, model.StatusClosed)
		if err != nil {
			return nil, fmt.Errorf("category report: %w", err)
		}
		report[cat.Name] = map[string]int64{
			"total":    total,
			"open":     open,
			"resolved": resolved,
			"closed":   closed,
		}
	}
	return report, nil
}

// AverageResolutionTime считает среднее время от подачи до резолюции по
// обращениям, сейчас находящимся в RESOLVED.
func (s *GrievanceService) AverageResolutionTime(ctx context.Context) (*ResolutionReport, error) {
	resolved, err := s.grievances.ListByStatus(ctx, model.StatusResolved)
	if err != nil {
		return nil, fmt.Errorf("resolution report: %w", err)
	}
	if len(resolved) == 0 {
		return &ResolutionReport{}, nil
	}
	var totalHours float64
	counted := 0
	for _, g := range resolved {
		if g.ResolvedAt == nil {
			continue
		}
		totalHours += g.ResolvedAt.Sub(g.CreatedAt).Hours()
		counted++
	}
	if counted == 0 {
		return &ResolutionReport{}, nil
	}
	return &ResolutionReport{
		AverageHours:  totalHours / float64(counted),
		TotalResolved: counted,
	}, nil
}
