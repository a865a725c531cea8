package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/psds-microservice/grievance-service/internal/errs"
	"github.com/psds-microservice/grievance-service/internal/kafka"
	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/psds-microservice/grievance-service/internal/repository"
)

// AssignmentBalancer — выбор наименее загруженного офицера департамента.
type AssignmentBalancer interface {
	LeastLoadedOfficer(ctx context.Context, departmentID int64) (int64, bool)
}

// GrievanceServicer — интерфейс движка жизненного цикла для handler-слоя
// и планировщика (Dependency Inversion).
type GrievanceServicer interface {
	Lodge(ctx context.Context, in LodgeInput) (*model.Grievance, error)
	Assign(ctx context.Context, grievanceID uint64, officerID int64) error
	AutoAssign(ctx context.Context, grievanceID uint64) (int64, error)
	UpdateStatus(ctx context.Context, grievanceID uint64, newStatus model.GrievanceStatus, remarks string, actorID int64) error
	Escalate(ctx context.Context, grievanceID uint64, citizenID int64) error
	Withdraw(ctx context.Context, grievanceID uint64, citizenID int64) error

	GetByID(ctx context.Context, grievanceID uint64) (*GrievanceDetail, error)
	History(ctx context.Context, grievanceID uint64) ([]model.StatusHistory, error)
	List(ctx context.Context, f repository.GrievanceFilter, limit, offset int) ([]model.Grievance, int64, error)

	AddComment(ctx context.Context, grievanceID uint64, senderID int64, role model.Role, message string, isInternal bool) (*model.Comment, error)
	Comments(ctx context.Context, grievanceID uint64) ([]model.Comment, error)

	Dashboard(ctx context.Context, officerID int64) (*DashboardStats, error)
	DepartmentReport(ctx context.Context) (map[string]map[string]int64, error)
	CategoryReport(ctx context.Context) (map[string]map[string]int64, error)
	AverageResolutionTime(ctx context.Context) (*ResolutionReport, error)

	DueForEscalation(ctx context.Context) ([]model.Grievance, error)
	AutoEscalate(ctx context.Context, g *model.Grievance) error
}

// GrievanceService — движок жизненного цикла обращения. Каждая операция —
// одна единица работы против хранилища: проверка статуса, мутация и строка
// истории фиксируются атомарно (GrievanceRepository.Transition).
type GrievanceService struct {
	grievances  repository.GrievanceRepository
	history     repository.HistoryRepository
	comments    repository.CommentRepository
	departments repository.DepartmentRepository
	categories  repository.CategoryRepository
	balancer    AssignmentBalancer
	producer    kafka.NotificationProducer

	// escalateAfter — срок от назначения до автоэскалации (обычно 72h).
	escalateAfter time.Duration
}

func NewGrievanceService(
	grievances repository.GrievanceRepository,
	history repository.HistoryRepository,
	comments repository.CommentRepository,
	departments repository.DepartmentRepository,
	categories repository.CategoryRepository,
	balancer AssignmentBalancer,
	producer kafka.NotificationProducer,
	escalateAfter time.Duration,
) *GrievanceService {
	return &GrievanceService{
		grievances:    grievances,
		history:       history,
		comments:      comments,
		departments:   departments,
		categories:    categories,
		balancer:      balancer,
		producer:      producer,
		escalateAfter: escalateAfter,
	}
}

type LodgeInput struct {
	CitizenID    int64
	DepartmentID int64
	CategoryID   int64
	Title        string
	Description  string
	Priority     model.Priority
}

// GrievanceDetail — обращение с именами справочников для выдачи.
type GrievanceDetail struct {
	model.Grievance
	DepartmentName string `json:"department_name,omitempty"`
	CategoryName   string `json:"category_name,omitempty"`
}

// Lodge регистрирует обращение в SUBMITTED, пробует автоназначение и шлёт
// уведомление гражданину. Падение автоназначения или уведомления не валит
// регистрацию.
func (s *GrievanceService) Lodge(ctx context.Context, in LodgeInput) (*model.Grievance, error) {
	dept, err := s.departments.GetByID(ctx, in.DepartmentID)
	if err != nil {
		return nil, err
	}
	cat, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat.DepartmentID != dept.ID {
		return nil, fmt.Errorf("%w: category %d does not belong to department %d",
			errs.ErrCategoryNotFound, cat.ID, dept.ID)
	}

	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	g := &model.Grievance{
		CitizenID:    in.CitizenID,
		DepartmentID: in.DepartmentID,
		CategoryID:   in.CategoryID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       model.StatusSubmitted,
		Priority:     priority,
	}
	h := &model.StatusHistory{
		NewStatus: model.StatusSubmitted,
		Remarks:   "Grievance lodged",
	}
	h.SetActor(model.UserActor(in.CitizenID))
	if err := s.grievances.Create(ctx, g, h); err != nil {
		return nil, fmt.Errorf("lodge grievance: %w", err)
	}

	if officerID, ok := s.balancer.LeastLoadedOfficer(ctx, dept.ID); ok {
		if err := s.Assign(ctx, g.ID, officerID); err != nil {
			log.Printf("service: auto-assign grievance %s: %v", g.GrievanceNumber, err)
		} else if updated, err := s.grievances.GetByID(ctx, g.ID); err == nil {
			g = updated
		}
	}

	s.notify(ctx, in.CitizenID, "Grievance Lodged Successfully",
		fmt.Sprintf("Your grievance %s has been lodged successfully.", g.GrievanceNumber))
	return g, nil
}

// Assign назначает (или переназначает) офицера. Допустимо из SUBMITTED и
// ASSIGNED; дедлайн автоэскалации каждый раз выставляется заново от текущего
// момента.
func (s *GrievanceService) Assign(ctx context.Context, grievanceID uint64, officerID int64) error {
	g, err := s.grievances.GetByID(ctx, grievanceID)
	if err != nil {
		return err
	}
	if g.Status != model.StatusSubmitted && g.Status != model.StatusAssigned {
		return errs.ErrInvalidState
	}

	old := g.Status
	deadline := time.Now().Add(s.escalateAfter)
	g.AssignedOfficerID = &officerID
	g.Status = model.StatusAssigned
	g.AutoEscalationDeadline = &deadline

	h := &model.StatusHistory{
		OldStatus: &old,
		NewStatus: model.StatusAssigned,
		Remarks:   "Grievance assigned to officer",
	}
	h.SetActor(model.UserActor(officerID))
	if err := s.grievances.Transition(ctx, g, h); err != nil {
		return err
	}

	s.notify(ctx, officerID, "New Grievance Assigned",
		fmt.Sprintf("Grievance %s has been assigned to you.", g.GrievanceNumber))
	return nil
}

// AutoAssign запускает балансировщик для уже поданного обращения.
// Возвращает выбранного офицера.
func (s *GrievanceService) AutoAssign(ctx context.Context, grievanceID uint64) (int64, error) {
	g, err := s.grievances.GetByID(ctx, grievanceID)
	if err != nil {
		return 0, err
	}
	officerID, ok := s.balancer.LeastLoadedOfficer(ctx, g.DepartmentID)
	if !ok {
		return 0, fmt.Errorf("%w: no officer available in department %d", errs.ErrInvalidState, g.DepartmentID)
	}
	if err := s.Assign(ctx, grievanceID, officerID); err != nil {
		return 0, err
	}
	return officerID, nil
}

// UpdateStatus выполняет переход по таблице допустимых переходов. Переход в
// тот же или недопустимый статус — штатный отказ ErrInvalidState.
func (s *GrievanceService) UpdateStatus(ctx context.Context, grievanceID uint64, newStatus model.GrievanceStatus, remarks string, actorID int64) error {
	g, err := s.grievances.GetByID(ctx, grievanceID)
	if err != nil {
		return err
	}
	if !model.CanTransition(g.Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidState, g.Status, newStatus)
	}

	old := g.Status
	now := time.Now()
	g.Status = newStatus
	g.ResolutionRemarks = remarks
	switch newStatus {
	case model.StatusResolved:
		g.ResolvedAt = &now
	case model.StatusClosed:
		g.ClosedAt = &now
	}

	h := &model.StatusHistory{
		OldStatus: &old,
		NewStatus: newStatus,
		Remarks:   remarks,
	}
	h.SetActor(model.UserActor(actorID))
	if err := s.grievances.Transition(ctx, g, h); err != nil {
		return err
	}

	s.notify(ctx, g.CitizenID, "Grievance Status Updated",
		fmt.Sprintf("Your grievance %s status has been updated to %s.", g.GrievanceNumber, newStatus))
	return nil
}

// Escalate — ручная эскалация гражданином. Разрешена только владельцу и
// только из RESOLVED.
func (s *GrievanceService) Escalate(ctx context.Context, grievanceID uint64, citizenID int64) error {
	g, err := s.grievances.GetByID(ctx, grievanceID)
	if err != nil {
		return err
	}
	if g.CitizenID != citizenID {
		return fmt.Errorf("%w: only the owner can escalate", errs.ErrUnauthorized)
	}
	if g.Status != model.StatusResolved {
		return fmt.Errorf("%w: only resolved grievances can be escalated", errs.ErrInvalidState)
	}

	old := g.Status
	now := time.Now()
	g.Status = model.StatusEscalated
	g.EscalatedAt = &now

	h := &model.StatusHistory{
		OldStatus: &old,
		NewStatus: model.StatusEscalated,
		Remarks:   "Grievance escalated by citizen",
	}
	h.SetActor(model.UserActor(citizenID))
	return s.grievances.Transition(ctx, g, h)
}

// Withdraw — отзыв обращения гражданином, только из SUBMITTED. Обращение не
// удаляется, а закрывается.
func (s *GrievanceService) Withdraw(ctx context.Context, grievanceID uint64, citizenID int64) error {
	g, err := s.grievances.GetByID(ctx, grievanceID)
	if err != nil {
		return err
	}
	if g.CitizenID != citizenID {
		return fmt.Errorf("%w: only the owner can withdraw", errs.ErrUnauthorized)
	}
	if g.Status != model.StatusSubmitted {
		return fmt.Errorf("%w: only submitted grievances can be withdrawn", errs.ErrInvalidState)
	}

	old := g.Status
	now := time.Now()
	g.Status = model.StatusClosed
	g.ClosedAt = &now

	h := &model.StatusHistory{
		OldStatus: &old,
		NewStatus: model.StatusClosed,
		Remarks:   "Withdrawn by citizen",
	}
	h.SetActor(model.UserActor(citizenID))
	return s.grievances.Transition(ctx, g, h)
}

func (s *GrievanceService) GetByID(ctx context.Context, grievanceID uint64) (*GrievanceDetail, error) {
	g, err := s.grievances.GetByID(ctx, grievanceID)
	if err != nil {
		return nil, err
	}
	detail := &GrievanceDetail{Grievance: *g}
	if dept, err := s.departments.GetByID(ctx, g.DepartmentID); err == nil {
		detail.DepartmentName = dept.Name
	}
	if cat, err := s.categories.GetByID(ctx, g.CategoryID); err == nil {
		detail.CategoryName = cat.Name
	}
	return detail, nil
}

func (s *GrievanceService) History(ctx context.Context, grievanceID uint64) ([]model.StatusHistory, error) {
	if _, err := s.grievances.GetByID(ctx, grievanceID); err != nil {
		return nil, err
	}
	return s.history.ListByGrievance(ctx, grievanceID)
}

func (s *GrievanceService) List(ctx context.Context, f repository.GrievanceFilter, limit, offset int) ([]model.Grievance, int64, error) {
	return s.grievances.List(ctx, f, limit, offset)
}

func (s *GrievanceService) AddComment(ctx context.Context, grievanceID uint64, senderID int64, role model.Role, message string, isInternal bool) (*model.Comment, error) {
	if _, err := s.grievances.GetByID(ctx, grievanceID); err != nil {
		return nil, err
	}
	c := &model.Comment{
		GrievanceID: grievanceID,
		SenderID:    senderID,
		SenderRole:  role,
		Message:     message,
		IsInternal:  isInternal,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return c, nil
}

func (s *GrievanceService) Comments(ctx context.Context, grievanceID uint64) ([]model.Comment, error) {
	if _, err := s.grievances.GetByID(ctx, grievanceID); err != nil {
		return nil, err
	}
	return s.comments.ListByGrievance(ctx, grievanceID)
}

// DueForEscalation — обращения, ждущие автоэскалации на текущий момент.
func (s *GrievanceService) DueForEscalation(ctx context.Context) ([]model.Grievance, error) {
	return s.grievances.DueForEscalation(ctx, time.Now())
}

// AutoEscalate переводит RESOLVED с истёкшим дедлайном в ESCALATED от имени
// системы. Если параллельное ручное действие уже увело обращение из
// RESOLVED, охранное условие Transition вернёт ErrInvalidState — запись
// просто пропускается, без истории и уведомлений.
func (s *GrievanceService) AutoEscalate(ctx context.Context, g *model.Grievance) error {
	if g.Status != model.StatusResolved {
		return errs.ErrInvalidState
	}

	old := g.Status
	now := time.Now()
	g.Status = model.StatusEscalated
	g.EscalatedAt = &now

	h := &model.StatusHistory{
		OldStatus: &old,
		NewStatus: model.StatusEscalated,
		Remarks:   "Auto-escalated due to timeout",
	}
	h.SetActor(model.SystemActor())
	if err := s.grievances.Transition(ctx, g, h); err != nil {
		return err
	}

	s.notify(ctx, g.CitizenID, "Grievance Auto-Escalated",
		fmt.Sprintf("Your grievance %s has been auto-escalated to a supervisor due to timeout.", g.GrievanceNumber))
	if g.EscalatedToSupervisorID != nil {
		s.notify(ctx, *g.EscalatedToSupervisorID, "Grievance Escalated",
			fmt.Sprintf("Grievance %s has been escalated to you.", g.GrievanceNumber))
	}
	return nil
}

// notify — fire-and-forget: ошибки публикации гасятся в продюсере и никогда
// не влияют на исход операции.
func (s *GrievanceService) notify(ctx context.Context, userID int64, subject, body string) {
	if s.producer == nil {
		return
	}
	s.producer.SendNotification(ctx, userID, subject, body)
}
