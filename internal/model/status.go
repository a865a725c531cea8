package model

import "fmt"

type GrievanceStatus string

const (
	StatusSubmitted GrievanceStatus = "SUBMITTED"
	StatusAssigned  GrievanceStatus = "ASSIGNED"
	StatusInReview  GrievanceStatus = "IN_REVIEW"
	StatusResolved  GrievanceStatus = "RESOLVED"
	StatusClosed    GrievanceStatus = "CLOSED"
	StatusEscalated GrievanceStatus = "ESCALATED"
)

// transitions — допустимые переходы статуса. CLOSED терминальный,
// ESCALATED может дальше вестись вручную.
var transitions = map[GrievanceStatus][]GrievanceStatus{
	StatusSubmitted: {StatusAssigned, StatusInReview, StatusClosed},
	StatusAssigned:  {StatusInReview, StatusResolved, StatusClosed},
	StatusInReview:  {StatusAssigned, StatusResolved, StatusClosed},
	StatusResolved:  {StatusInReview, StatusEscalated, StatusClosed},
	StatusEscalated: {StatusInReview, StatusResolved, StatusClosed},
	StatusClosed:    {},
}

// ParseStatus валидирует статус на границе API.
func ParseStatus(s string) (GrievanceStatus, error) {
	switch st := GrievanceStatus(s); st {
	case StatusSubmitted, StatusAssigned, StatusInReview, StatusResolved, StatusClosed, StatusEscalated:
		return st, nil
	}
	return "", fmt.Errorf("unknown grievance status %q", s)
}

// CanTransition сообщает, разрешён ли переход from → to.
// Переход в тот же статус не считается переходом.
func CanTransition(from, to GrievanceStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Active — обращение в работе: любой статус кроме CLOSED и RESOLVED.
// Такие обращения входят в нагрузку офицера.
func (s GrievanceStatus) Active() bool {
	return s != StatusClosed && s != StatusResolved
}

func (s GrievanceStatus) Terminal() bool { return s == StatusClosed }
