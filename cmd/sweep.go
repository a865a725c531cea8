package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/psds-microservice/grievance-service/internal/assignment"
	"github.com/psds-microservice/grievance-service/internal/config"
	"github.com/psds-microservice/grievance-service/internal/database"
	"github.com/psds-microservice/grievance-service/internal/directory"
	"github.com/psds-microservice/grievance-service/internal/kafka"
	"github.com/psds-microservice/grievance-service/internal/repository/postgres"
	"github.com/psds-microservice/grievance-service/internal/scheduler"
	"github.com/psds-microservice/grievance-service/internal/service"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "One-shot escalation sweep: move overdue RESOLVED grievances to ESCALATED",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	_ = godotenv.Load("../../.env") // repo root when running from bin/
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}

	grievanceRepo := postgres.NewGrievanceRepo(db)
	roster := directory.NewClient(cfg.UserServiceURL, cfg.InternalServiceToken)
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicNotification)
	defer producer.Close()

	svc := service.NewGrievanceService(
		grievanceRepo,
		postgres.NewHistoryRepo(db),
		postgres.NewCommentRepo(db),
		postgres.NewDepartmentRepo(db),
		postgres.NewCategoryRepo(db),
		assignment.NewBalancer(roster, grievanceRepo),
		producer,
		cfg.AutoEscalationAfter(),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	sweeper := scheduler.NewSweeper(svc, cfg.EscalationInterval)
	escalated, err := sweeper.SweepOnce(ctx)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	log.Printf("sweep: done, escalated %d grievances", escalated)
	return nil
}
