// Package scheduler — периодическая автоэскалация зависших обращений.
package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/psds-microservice/grievance-service/internal/errs"
	"github.com/psds-microservice/grievance-service/internal/model"
)

// Escalator — часть движка жизненного цикла, нужная свипу.
type Escalator interface {
	DueForEscalation(ctx context.Context) ([]model.Grievance, error)
	AutoEscalate(ctx context.Context, g *model.Grievance) error
}

// Sweeper раз в интервал переводит RESOLVED с истёкшим дедлайном в
// ESCALATED от имени системы. Работает в отдельной горутине и не занимает
// обслуживание запросов.
type Sweeper struct {
	engine   Escalator
	interval time.Duration
}

func NewSweeper(engine Escalator, interval time.Duration) *Sweeper {
	return &Sweeper{engine: engine, interval: interval}
}

// Run крутит свип до отмены ctx. Ошибки тика логируются, цикл живёт дальше.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("scheduler: escalation sweep every %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if _, err := s.SweepOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			log.Printf("scheduler: sweep failed: %v", err)
		}
	}
}

// SweepOnce выполняет один проход. Отказ одной записи не прерывает
// остальные; отмена ctx уважается только между записями, переход никогда не
// рвётся посередине. Возвращает число эскалированных обращений.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	due, err := s.engine.DueForEscalation(ctx)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		log.Println("scheduler: no grievances to auto-escalate")
		return 0, nil
	}
	log.Printf("scheduler: found %d grievances to auto-escalate", len(due))

	escalated := 0
	skipped := 0
	for i := range due {
		select {
		case <-ctx.Done():
			return escalated, ctx.Err()
		default:
		}

		g := due[i]
		if err := s.engine.AutoEscalate(ctx, &g); err != nil {
			// Запись уже ушла из RESOLVED параллельным ручным действием.
			if errors.Is(err, errs.ErrInvalidState) {
				skipped++
				continue
			}
			log.Printf("scheduler: auto-escalate grievance %s: %v", g.GrievanceNumber, err)
			continue
		}
		escalated++
	}
	log.Printf("scheduler: sweep done, escalated %d, skipped %d of %d", escalated, skipped, len(due))
	return escalated, nil
}
