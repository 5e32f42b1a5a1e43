package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cowboylogic-net/bookstore/internal/app"
	"github.com/cowboylogic-net/bookstore/internal/config"
	"github.com/cowboylogic-net/bookstore/internal/handler"
	"github.com/cowboylogic-net/bookstore/internal/postgres"
	"github.com/cowboylogic-net/bookstore/internal/provider"
	"github.com/cowboylogic-net/bookstore/internal/repo"
	"github.com/cowboylogic-net/bookstore/internal/service"
	"github.com/cowboylogic-net/bookstore/pkg/cache"
	"github.com/cowboylogic-net/bookstore/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Bookstore Checkout API
// @version         1.0
// @description     Документация HTTP API движка заказов
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	customerRepo := repo.NewCustomerRepo(db)

	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	gateway := provider.NewClient(conf.Provider)

	checkoutService := service.NewCheckoutService(logger, txManager, productRepo, cartRepo, orderRepo, gateway)
	reconcileService := service.NewReconcileService(logger, txManager, gateway, orderRepo, productRepo, cartRepo, customerRepo, orderCache)
	orderQueries := service.NewOrderQueryService(logger, orderRepo)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, reconcileService)
	httpHandler := handler.NewHTTPHandler(logger, checkoutService, reconcileService, orderQueries)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
