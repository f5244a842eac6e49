package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sandevex/hiring-backend-go/internal/config"
	appHTTP "github.com/sandevex/hiring-backend-go/internal/handler/http"
	"github.com/sandevex/hiring-backend-go/internal/pkg/database"
	"github.com/sandevex/hiring-backend-go/internal/pkg/email"
	"github.com/sandevex/hiring-backend-go/internal/pkg/jobs"
	"github.com/sandevex/hiring-backend-go/internal/pkg/session"
	"github.com/sandevex/hiring-backend-go/internal/pkg/sheets"
	"github.com/sandevex/hiring-backend-go/internal/repository/postgresql"
	auditService "github.com/sandevex/hiring-backend-go/internal/service/audit"
	authService "github.com/sandevex/hiring-backend-go/internal/service/auth"
	candidateService "github.com/sandevex/hiring-backend-go/internal/service/candidate"
	importerService "github.com/sandevex/hiring-backend-go/internal/service/importer"
	internService "github.com/sandevex/hiring-backend-go/internal/service/intern"
	offerService "github.com/sandevex/hiring-backend-go/internal/service/offer"
	preferenceService "github.com/sandevex/hiring-backend-go/internal/service/preference"
	reportService "github.com/sandevex/hiring-backend-go/internal/service/report"
	"github.com/sandevex/hiring-backend-go/migrations"
)

func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := runMigrations(dsn); err != nil {
		log.Fatal("Error applying migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	candidateRepo := postgresql.NewCandidateRepository(db)
	preferenceRepo := postgresql.NewPreferenceRepository(db)
	offerRepo := postgresql.NewOfferRepository(db)
	internRepo := postgresql.NewInternRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)

	sessionSvc := session.NewSessionService(cfg.Session.Secret, cfg.Session.Expiration)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	var rowSource sheets.RowSource
	if cfg.Sheets.CredentialsFile != "" {
		rowSource, err = sheets.NewRowSource(context.Background(), cfg.Sheets.CredentialsFile)
		if err != nil {
			log.Fatal("Failed to initialize sheets client: ", err)
		}
	} else {
		rowSource = sheets.Disabled()
	}

	authSvc := authService.NewAuthService(cfg.Admin.PasswordHash, sessionSvc)
	auditSvc := auditService.NewAuditService(auditLogRepo)
	offerSvc := offerService.NewOfferService(offerRepo, candidateRepo, internRepo, profileRepo, emailSvc, cfg)
	internSvc := internService.NewInternService(db, internRepo, profileRepo, candidateRepo, offerRepo, preferenceRepo, auditSvc)
	candidateSvc := candidateService.NewCandidateService(candidateRepo)
	preferenceSvc := preferenceService.NewPreferenceService(preferenceRepo)
	importerSvc := importerService.NewImporterService(rowSource, candidateRepo, preferenceRepo, cfg.Sheets)
	reportSvc := reportService.NewReportService(candidateRepo, offerRepo, preferenceRepo, internRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, sessionSvc)
	offerHandler := appHTTP.NewOfferHandler(offerSvc)
	candidateHandler := appHTTP.NewCandidateHandler(candidateSvc, reportSvc, importerSvc)
	preferenceHandler := appHTTP.NewPreferenceHandler(preferenceSvc, reportSvc, importerSvc)
	internHandler := appHTTP.NewInternHandler(internSvc, reportSvc)
	auditHandler := appHTTP.NewAuditHandler(auditSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		sessionSvc,
		authHandler,
		offerHandler,
		candidateHandler,
		preferenceHandler,
		internHandler,
		auditHandler,
		reportHandler,
	)

	scheduler := jobs.NewScheduler(offerSvc)
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start background jobs: ", err)
	}
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
