package main

import (
	"io"
	"log"
	"os"

	"github.com/sahyadritrails/trails-api/internal/config"
	"github.com/sahyadritrails/trails-api/internal/logging"
	"github.com/sahyadritrails/trails-api/internal/media"
	"github.com/sahyadritrails/trails-api/internal/repository/minio"
	"github.com/sahyadritrails/trails-api/internal/repository/postgres"
	"github.com/sahyadritrails/trails-api/internal/service"
	transport "github.com/sahyadritrails/trails-api/internal/transport/http"
	"github.com/sahyadritrails/trails-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	minioClient, err := minio.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect minio: %v", err)
	}
	storage := minio.NewStorage(minioClient, cfg.MinIOPublicURL, cfg.MinIOUseSSL)

	tourRepo := postgres.NewTourRepo(db)
	blogRepo := postgres.NewBlogRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	adminRepo := postgres.NewAdminUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	tourService := service.NewTourService(tourRepo)
	blogService := service.NewBlogService(blogRepo)
	bookingService := service.NewBookingService(bookingRepo, tourRepo)
	seedService := service.NewSeedService(tourRepo, tourService, blogService)
	authService := service.NewAuthService(adminRepo, sessionRepo, jwtManager, cfg.GoogleAudience)
	uploadService := service.NewUploadService(storage, service.UploadServiceConfig{
		Bucket:            cfg.MinIOBucket,
		MaxBytes:          cfg.UploadMaxBytes,
		ImageProcessor:    media.NewFFMPEGProcessor(cfg.FFmpegPath, cfg.ImageMaxDimension),
		ImageMaxDimension: cfg.ImageMaxDimension,
	})

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAuth(e, authService)
	transport.RegisterTours(e, authService, tourService)
	transport.RegisterBlogs(e, authService, blogService)
	transport.RegisterBookings(e, authService, bookingService)
	transport.RegisterUpload(e, uploadService)
	transport.RegisterSeed(e, seedService)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
