package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"medresFront/internal/config"
	catalogusecase "medresFront/internal/modules/catalog/application/usecase"
	cataloginfra "medresFront/internal/modules/catalog/infrastructure"
	catalogtransport "medresFront/internal/modules/catalog/interface"
	realtimehandler "medresFront/internal/modules/realtime/application/handler"
	realtimeusecase "medresFront/internal/modules/realtime/application/usecase"
	realtimeinfra "medresFront/internal/modules/realtime/infrastructure"
	realtimetransport "medresFront/internal/modules/realtime/interface"
	reservationusecase "medresFront/internal/modules/reservations/application/usecase"
	reservationinfra "medresFront/internal/modules/reservations/infrastructure"
	reservationtransport "medresFront/internal/modules/reservations/interface"
	userusecase "medresFront/internal/modules/users/application/usecase"
	userinfra "medresFront/internal/modules/users/infrastructure"
	usertransport "medresFront/internal/modules/users/interface"
	"medresFront/internal/platform/broker"
	"medresFront/internal/shared/auth"
	"medresFront/internal/shared/logging"
)

func main() {
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg := config.Load()

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Dir), slog.String("level", cfg.Logging.Level))
	slog.Info("medres backend", slog.String("baseUrl", cfg.Medres.BaseURL), slog.Duration("timeout", cfg.Medres.Timeout))

	// Adaptadores hacia el backend medres.
	catalogClient := cataloginfra.NewCatalogHTTPClient(cfg.Medres.BaseURL, cfg.Medres.Timeout, nil)
	reservationClient := reservationinfra.NewReservationHTTPClient(cfg.Medres.BaseURL, cfg.Medres.Timeout, nil)
	userClient := userinfra.NewUserHTTPClient(cfg.Medres.BaseURL, cfg.Medres.Timeout, nil)

	session := auth.NewSession()
	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)

	catalogService := catalogusecase.NewCatalogService(catalogClient, catalogClient)
	accountService := userusecase.NewAccountService(userClient, session)
	wizardStore := reservationusecase.NewWizardStore()

	// Realtime: eventos de reservas del backend hacia el calendario.
	hub := realtimeinfra.NewHub()
	registry := realtimeinfra.NewHandlerRegistry()
	broadcastUC := realtimeusecase.NewBroadcastUseCase(hub)
	for _, topic := range cfg.Kafka.Topics {
		registry.Register(realtimehandler.NewReservationStreamHandler(topic, []string{"created", "updated", "deleted"}, broadcastUC))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	broker.StartConsumers(ctx, registry.Dispatch, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)

	e := echo.New()
	e.Logger.SetOutput(log.Writer())

	wizardHandler := reservationtransport.NewWizardHandler(wizardStore, catalogService, reservationClient, session)
	reportHandler := reservationtransport.NewReportHandler(reservationClient)
	calendarHandler := reservationtransport.NewCalendarHandler(reservationClient)
	adminReservations := reservationtransport.NewAdminReservationHandler(reservationClient, reservationClient)
	catalogHandler := catalogtransport.NewCatalogHandler(catalogService)
	userHandler := usertransport.NewUserHandler(accountService)

	front := e.Group("/api/front")
	wizardHandler.Register(front.Group("/reserva"))
	catalogHandler.RegisterPublic(front)
	userHandler.Register(front)
	adminReservations.RegisterGuest(front)

	admin := front.Group("/admin")
	reportHandler.Register(admin)
	calendarHandler.Register(admin)
	adminReservations.Register(admin)
	catalogHandler.RegisterAdmin(admin)
	userHandler.RegisterAdmin(admin)

	e.GET("/ws/calendario", realtimetransport.NewCalendarStreamHandler(hub, validator, cfg.Websocket.SendBuffer))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.Logging) (*os.File, *slog.Logger, error) {
	file, err := logging.OpenDailyFile(cfg.Dir)
	if err != nil {
		return nil, nil, err
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
