package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/psds-microservice/grievance-service/internal/assignment"
	"github.com/psds-microservice/grievance-service/internal/config"
	"github.com/psds-microservice/grievance-service/internal/database"
	"github.com/psds-microservice/grievance-service/internal/directory"
	"github.com/psds-microservice/grievance-service/internal/handler"
	"github.com/psds-microservice/grievance-service/internal/kafka"
	"github.com/psds-microservice/grievance-service/internal/repository/postgres"
	"github.com/psds-microservice/grievance-service/internal/router"
	"github.com/psds-microservice/grievance-service/internal/scheduler"
	"github.com/psds-microservice/grievance-service/internal/service"
)

// API приложение: HTTP сервер и фоновый свипер эскалаций (режим api).
type API struct {
	cfg      *config.Config
	httpSrv  *http.Server
	sweeper  *scheduler.Sweeper
	producer *kafka.Producer
}

// NewAPI создаёт приложение для режима api: миграции, подключение к БД,
// сборка сервисов и маршрутов.
func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := database.MigrateUp(cfg.DatabaseURL()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	grievanceRepo := postgres.NewGrievanceRepo(db)
	historyRepo := postgres.NewHistoryRepo(db)
	commentRepo := postgres.NewCommentRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)
	departmentRepo := postgres.NewDepartmentRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)

	roster := directory.NewClient(cfg.UserServiceURL, cfg.InternalServiceToken)
	balancer := assignment.NewBalancer(roster, grievanceRepo)
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicNotification)

	grievanceSvc := service.NewGrievanceService(
		grievanceRepo,
		historyRepo,
		commentRepo,
		departmentRepo,
		categoryRepo,
		balancer,
		producer,
		cfg.AutoEscalationAfter(),
	)
	documentSvc := service.NewDocumentService(documentRepo, grievanceRepo)
	referenceSvc := service.NewReferenceService(departmentRepo, categoryRepo)

	mux := router.New(
		handler.NewGrievanceHandler(grievanceSvc),
		handler.NewDocumentHandler(documentSvc),
		handler.NewReferenceHandler(referenceSvc),
	)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{
		cfg:      cfg,
		httpSrv:  httpSrv,
		sweeper:  scheduler.NewSweeper(grievanceSvc, cfg.EscalationInterval),
		producer: producer,
	}, nil
}

// Run запускает HTTP сервер и свипер эскалаций, блокируется до отмены ctx.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	log.Printf("HTTP server listening on %s", a.httpSrv.Addr)
	log.Printf("  Swagger UI:    %s/swagger/index.html", base)
	log.Printf("  Health:        %s/health", base)
	log.Printf("  Ready:         %s/ready", base)
	log.Printf("  API v1:        %s/api/v1/", base)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	go func() {
		if err := a.sweeper.Run(ctx); err != nil {
			log.Printf("escalation sweeper: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	a.producer.Close()
	return nil
}
