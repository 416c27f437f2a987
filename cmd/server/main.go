package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ganglia/scripteval/internal/gcp"
	"github.com/ganglia/scripteval/internal/services"
	"github.com/ganglia/scripteval/internal/web"
)

// config holds all configuration for the intake server.
type config struct {
	ProjectID    string
	UploadBucket string
	Secret       string
	ListenAddr   string
}

// loadConfig loads and validates all necessary environment variables.
func loadConfig() (*config, error) {
	projectID := gcp.GetEnv("PROJECT_ID", "")
	if projectID == "" {
		return nil, fmt.Errorf("PROJECT_ID environment variable must be set")
	}
	uploadBucket := gcp.GetEnv("UPLOAD_BUCKET", "")
	if uploadBucket == "" {
		return nil, fmt.Errorf("UPLOAD_BUCKET environment variable must be set")
	}
	secret := gcp.GetEnv("SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("SECRET environment variable must be set")
	}

	return &config{
		ProjectID:    projectID,
		UploadBucket: uploadBucket,
		Secret:       secret,
		ListenAddr:   gcp.GetEnv("LISTEN_ADDR", ":8000"),
	}, nil
}

func run(ctx context.Context) error {
	// A missing .env is fine; the environment may be set by the platform.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := gcp.NewBucketStore(ctx, cfg.UploadBucket)
	if err != nil {
		return err
	}
	defer store.Close()

	firestoreClient, err := gcp.NewFirestoreClient(ctx, cfg.ProjectID)
	if err != nil {
		return err
	}
	defer firestoreClient.Close()

	ocr, err := gcp.NewVisionOCR(ctx)
	if err != nil {
		return err
	}
	defer ocr.Close()

	segmenter, err := services.NewSegmenter()
	if err != nil {
		return err
	}

	subjects := gcp.NewSubjectRepository(firestoreClient)
	students := gcp.NewStudentRepository(firestoreClient)
	server := web.NewServer(
		services.NewSubjectIntake(store, subjects),
		services.NewStudentIntake(store, students, services.NewHandwritingExtractor(ocr)),
		subjects,
		students,
		segmenter,
		cfg.Secret,
	)

	slog.Info("Intake server listening.", "addr", cfg.ListenAddr, "bucket", cfg.UploadBucket)
	return http.ListenAndServe(cfg.ListenAddr, server.Router())
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("Server exited with error.", "error", err)
		os.Exit(1)
	}
}
