package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/crosspost/configs"
	"github.com/maheshrc27/crosspost/internal/api/handlers"
	job "github.com/maheshrc27/crosspost/internal/jobs"
	"github.com/maheshrc27/crosspost/internal/queue"
	"github.com/maheshrc27/crosspost/internal/repository"
	"github.com/maheshrc27/crosspost/internal/service"
	"github.com/maheshrc27/crosspost/internal/view"
	"github.com/maheshrc27/crosspost/pkg/utils"
	"github.com/maheshrc27/crosspost/web"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if cfg.SecretKey == "" {
		key, err := utils.GenerateRandomKey(32)
		if err != nil {
			log.Fatalf("Failed to generate session key: %v", err)
		}
		log.Println("Warning: SECRET_KEY is not set, sessions will not survive a restart")
		cfg.SecretKey = key
	}

	store, err := repository.OpenStore(*cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer closeStore(store)

	media, err := service.NewMediaStorage(*cfg)
	if err != nil {
		log.Fatalf("Failed to set up media storage: %v", err)
	}

	historyRepo := repository.NewHistoryRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	settingsService := service.NewSettingsService(settingsRepo)
	platformService := service.NewPlatformService(cfg.ConnectedPlatforms)
	workspaceService := service.NewWorkspaceService(settingsService, platformService, time.Now)
	uploadService := service.NewUploadService(workspaceService, media)
	historyService := service.NewHistoryService(historyRepo, time.Now)
	analyticsService := service.NewAnalyticsService(cfg.AnalyticsSource, &http.Client{Timeout: 10 * time.Second})

	// posts go through Redis when it is configured, otherwise through in-process timers
	var (
		postService service.PostService
		asynqServer *asynq.Server
		asynqClient *queue.AsynqDispatcher
		localTimers *queue.LocalDispatcher
		newPosts    = func(d service.Dispatcher) service.PostService {
			return service.NewPostService(historyRepo, settingsService, workspaceService, platformService, uploadService, d, cfg.PostDelay, time.Now)
		}
	)
	if cfg.RedisURI != "" {
		redisConn := redisConnOpt(cfg.RedisURI)
		asynqClient = queue.NewAsynqDispatcher(redisConn)
		postService = newPosts(asynqClient)

		queueW := queue.NewQueue(postService)
		asynqServer = asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})
		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeSimulatePost, queueW.HandleSimulatePostTask)

		go func() {
			log.Println("Starting the Asynq server...")
			if err := asynqServer.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	} else {
		localTimers = queue.NewLocalDispatcher()
		postService = newPosts(localTimers)
		localTimers.Bind(queue.NewQueue(postService).PublishPost)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	analyticsService.Load(ctx)
	cancel()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	app := fiber.New(fiber.Config{
		Immutable:    true,
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       3600,
	}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Static),
		PathPrefix: "static",
	}))
	if !cfg.R2.Enabled() {
		app.Static("/media", cfg.MediaDir)
	}

	handlers.Register(app, *cfg, handlers.PageServices{
		Workspaces: workspaceService,
		Uploads:    uploadService,
		Platforms:  platformService,
		Posts:      postService,
		History:    historyService,
		Settings:   settingsService,
		Analytics:  analyticsService,
	}, renderer)

	// cron jobs
	analyticsJob := job.NewAnalyticsRefreshJob(analyticsService)
	sweepJob := job.NewWorkspaceSweepJob(workspaceService, uploadService, cfg.SessionTTL, time.Now)

	c := cron.New()
	if err := c.AddFunc(cfg.AnalyticsRefresh, analyticsJob.RefreshAnalytics); err != nil {
		log.Fatalf("Invalid ANALYTICS_REFRESH schedule: %v", err)
	}
	if err := c.AddFunc(cfg.WorkspaceSweep, sweepJob.SweepWorkspaces); err != nil {
		log.Fatalf("Invalid WORKSPACE_SWEEP schedule: %v", err)
	}
	c.Start()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.BaseURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}
	c.Stop()

	if localTimers != nil {
		localTimers.Stop()
	}
	if asynqServer != nil {
		asynqServer.Shutdown()
		asynqClient.Close()
	}
	log.Println("Server shutdown complete.")
}

// redisConnOpt accepts either a redis:// URL or a bare host:port.
func redisConnOpt(uri string) asynq.RedisConnOpt {
	opt, err := asynq.ParseRedisURI(uri)
	if err != nil {
		return asynq.RedisClientOpt{Addr: uri}
	}
	return opt
}

func closeStore(store repository.KVStore) {
	fmt.Fprint(os.Stdout, "Closing store... ")
	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close store: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}
