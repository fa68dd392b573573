package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/goldencart/storefront/config"
	"github.com/goldencart/storefront/internal/adapter/catalogapi"
	"github.com/goldencart/storefront/internal/adapter/httphandler"
	"github.com/goldencart/storefront/internal/adapter/kafka"
	"github.com/goldencart/storefront/internal/adapter/metrics"
	"github.com/goldencart/storefront/internal/core/service"
	"github.com/goldencart/storefront/internal/core/store"
	"github.com/goldencart/storefront/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	eventSerde schema.Serde
	events     kafka.EventsProducer
	storefront *service.Storefront
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerde()
	app.initEventsProducer()
	app.initStorefront()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerde() {
	const op = "App.initSerde"

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.Topics.InteractionEvents + "-value"
	eventSerde, err := schema.NewSerdeInteractionEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventSerde = eventSerde
}

func (app *App) initEventsProducer() {
	const op = "App.initEventsProducer"

	events, err := kafka.NewEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.InteractionEvents,
		),
		kafka.ProducerEncoderOpt(app.eventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.events = events
}

func (app *App) initStorefront() {
	fetcher := catalogapi.New(app.cfg.Catalog.Endpoint, app.cfg.Catalog.Limit)
	catalog := store.NewCatalog(fetcher)

	app.storefront = service.New(
		catalog,
		store.NewCart(catalog),
		store.NewWishlist(),
		store.NewNotifier(
			app.cfg.Notifications.FadeAfter,
			app.cfg.Notifications.ClearAfter,
		),
		app.events,
		metrics.New(prometheus.DefaultRegisterer),
		app.cfg.PageSize,
	)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.storefront)
	httphandler.RegisterProducts(mux, app.storefront)
	httphandler.RegisterCart(mux, app.storefront)
	httphandler.RegisterWishlist(mux, app.storefront)
	httphandler.RegisterNotification(mux, app.storefront)
	httphandler.RegisterMetrics(mux, prometheus.DefaultGatherer)

	handler := httphandler.LogRequests(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	// warm the catalog so the first page render has data
	app.storefront.Load(app.ctx)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.storefront.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
