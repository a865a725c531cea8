// Package assignment выбирает офицера для автоназначения обращения.
package assignment

import (
	"context"
	"log"

	"github.com/psds-microservice/grievance-service/internal/directory"
)

// ActiveCounter — локальный счётчик нагрузки офицера (обращения не в
// CLOSED/RESOLVED).
type ActiveCounter interface {
	CountActiveByOfficer(ctx context.Context, officerID int64) (int64, error)
}

// Balancer сводит реестр офицеров и локальную нагрузку. Между запросом
// реестра и подсчётом нагрузки транзакции нет: кратковременный перекос
// при параллельных lodge допустим и не исправляется.
type Balancer struct {
	roster directory.Roster
	counts ActiveCounter
}

func NewBalancer(roster directory.Roster, counts ActiveCounter) *Balancer {
	return &Balancer{roster: roster, counts: counts}
}

// LeastLoadedOfficer возвращает офицера департамента с минимумом активных
// обращений; при равенстве — первого в порядке реестра. (0, false) — никого
// нет или реестр недоступен; вызывающая сторона продолжает без назначения.
func (b *Balancer) LeastLoadedOfficer(ctx context.Context, departmentID int64) (int64, bool) {
	officers, err := b.roster.AvailableOfficers(ctx, departmentID)
	if err != nil {
		log.Printf("assignment: officer roster for department %d: %v", departmentID, err)
		return 0, false
	}
	if len(officers) == 0 {
		log.Printf("assignment: no officers available for department %d", departmentID)
		return 0, false
	}

	var selected int64
	minLoad := int64(-1)
	for _, officerID := range officers {
		load, err := b.counts.CountActiveByOfficer(ctx, officerID)
		if err != nil {
			log.Printf("assignment: count active grievances for officer %d: %v", officerID, err)
			return 0, false
		}
		if minLoad < 0 || load < minLoad {
			minLoad = load
			selected = officerID
		}
	}
	log.Printf("assignment: selected officer %d with %d active grievances", selected, minLoad)
	return selected, true
}
