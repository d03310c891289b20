package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	_ "Backend-FormBuilder/docs"
	"Backend-FormBuilder/src/cache"
	"Backend-FormBuilder/src/config"
	"Backend-FormBuilder/src/controllers"
	"Backend-FormBuilder/src/database"
	"Backend-FormBuilder/src/jobs"
	"Backend-FormBuilder/src/logger"
	"Backend-FormBuilder/src/metrics"
	"Backend-FormBuilder/src/repository"
	"Backend-FormBuilder/src/routes"
	"Backend-FormBuilder/src/seeder"
	"Backend-FormBuilder/src/services/forms"
	"Backend-FormBuilder/src/services/responses"
	"Backend-FormBuilder/src/utils"
)

// @title        Form Builder API
// @version      1.0
// @description  Forms with categorize, cloze and comprehension questions, scored submissions and analytics.
// @BasePath     /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logger.New("form-builder", cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg config.Config, log *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongo, err := database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDB, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongo.Disconnect(shutdownCtx)
	}()

	rdb, err := database.InitRedis(ctx, cfg.RedisURI)
	if err != nil {
		// The cache and queue are optional; run without them.
		log.WithError(err).Warn("redis unavailable, continuing without cache and queue")
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	m := metrics.New()
	formRepo := repository.NewFormRepository(mongo.Forms)
	responseRepo := repository.NewResponseRepository(mongo.Responses)

	var purger forms.Purger = jobs.NewInlinePurger(responseRepo, m, log)
	var worker *asynq.Server
	if rdb != nil {
		queue := database.InitAsynq(cfg.RedisURI)
		defer queue.Close()
		purger = jobs.NewQueuePurger(queue, log)

		worker = jobs.NewServer(cfg.RedisURI, log)
		mux := jobs.NewServeMux(jobs.NewPurgeHandler(responseRepo, m, log))
		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("start worker: %w", err)
		}
		defer worker.Shutdown()
	}

	var formCache forms.Cache
	if rdb != nil {
		formCache = cache.NewFormCache(rdb, cfg.FormCacheTTL, log)
	}
	formSvc := forms.NewService(formRepo, responseRepo, purger, formCache, log)
	responseSvc := responses.NewService(responseRepo, formSvc, m, log)

	if cfg.SeedDemo {
		if err := seeder.SeedSampleForms(ctx, formSvc, log); err != nil {
			log.WithError(err).Warn("seeding sample forms failed")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:   "form-builder",
		BodyLimit: cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return utils.HandleError(c, fe.Code, fe.Message)
			}
			msg := "Internal server error"
			if cfg.IsDevelopment() {
				msg = err.Error()
			}
			return utils.HandleError(c, fiber.StatusInternalServerError, msg)
		},
	})
	routes.InitRoutes(app, routes.Deps{
		Forms:       controllers.NewFormController(formSvc, responseSvc, cfg.PublicBaseURL),
		Responses:   controllers.NewResponseController(responseSvc),
		Metrics:     m,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.AppPort).Info("server is running")
		errCh <- app.Listen(":" + cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
