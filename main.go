package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"redhatters.link/configs"
	"redhatters.link/configs/configsdatabase"
	"redhatters.link/configs/configslog"
	"redhatters.link/pkg/clock"
	"redhatters.link/pkg/navigate"
	"redhatters.link/pkg/notify"
	"redhatters.link/repositories"
	"redhatters.link/routes"
	"redhatters.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.Load()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	clk := clock.System{}
	notifier := notify.NewBuffer(configslog.Log)
	navigator := navigate.NewRecorder(configslog.Log)

	kvStore := repositories.NewKVRepository(db)
	credentialRepo := repositories.NewCredentialRepository(db)
	formRepo := repositories.NewFormRepository(db)

	sessionService := services.NewSessionService(kvStore, credentialRepo, notifier, navigator, clk)
	chatbotService := services.NewChatbotService()
	chatService := services.NewChatService(chatbotService, clk)
	suggestionService := services.NewSuggestionService()
	rsvpService := services.NewRSVPService(kvStore, clk)
	likeService := services.NewLikeService(kvStore)
	formService := services.NewFormService(cfg, formRepo, notifier, clk, &http.Client{Timeout: 15 * time.Second})

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	routes.SetupRoutes(app, routes.Deps{
		Session:    sessionService,
		Chat:       chatService,
		Suggestion: suggestionService,
		RSVP:       rsvpService,
		Form:       formService,
		Like:       likeService,
		Notifier:   notifier,
	})

	shutdownComplete := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		configslog.SLog.Info("Shutdown signal received, stopping...")
		sessionService.Shutdown()
		chatService.Shutdown()
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
		close(shutdownComplete)
	}()

	addr := ":" + cfg.Port
	configslog.SLog.Infof("Server listening on %s (env: %s)", addr, cfg.Env)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
	<-shutdownComplete
}
