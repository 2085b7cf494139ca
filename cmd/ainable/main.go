package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/ainable/backend/internal/capability"
	"github.com/ainable/backend/internal/config"
	"github.com/ainable/backend/internal/handler"
	"github.com/ainable/backend/internal/middleware"
	"github.com/ainable/backend/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "ainable",
		Short: "ainable backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run ainable server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			// Credentials live in the environment; a local .env is optional.
			_ = godotenv.Load()
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("aws_region", cfg.AWS.Region),
		zap.String("textgen_provider", cfg.TextGen.Provider),
	)

	awsCfg, err := capability.LoadAWSConfig(context.Background(), cfg.AWS.Region)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	ocr := capability.NewTextractOCR(awsCfg)
	images := capability.NewTitanImage(awsCfg, cfg.Image.ModelID)
	speech := capability.NewPollySpeech(awsCfg, cfg.Speech.Voice)

	provider, err := capability.NewProvider(cfg.TextGen.Provider, cfg.TextGen.Data)
	if err != nil {
		return fmt.Errorf("init textgen provider: %w", err)
	}
	gen := capability.NewGenerator(provider, cfg.TextGen.Model)

	genTimeout := time.Duration(cfg.TextGen.Timeout) * time.Second
	intakeService := service.NewIntakeService(ocr, cfg.Upload.MaxBytes, cfg.Upload.AllowedExtensions)
	simplifyService := service.NewSimplifyService(gen, cfg.TextGen.MaxOutputTokens, genTimeout)
	visualService := service.NewVisualService(images)
	narrateService := service.NewNarrateService(speech)
	qaService := service.NewQAService(gen, cfg.TextGen.MaxOutputTokens, genTimeout)

	deps := handler.RouterDeps{
		Info:   handler.NewInfoHandler(cfg.Version),
		Upload: handler.NewUploadHandler(intakeService),
		Assist: handler.NewAssistHandler(simplifyService, visualService, narrateService, qaService),
	}

	engine, err := webapi.NewEngine(
		"/",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
