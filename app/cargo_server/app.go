package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/cargoline/cargoline/pkg/cargo_server/api"
	"github.com/cargoline/cargoline/pkg/cargo_server/invoice"
	"github.com/cargoline/cargoline/pkg/cargo_server/lifecycle"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage/postgres"
	"github.com/cargoline/cargoline/pkg/cargo_server/sweeper"
	"github.com/cargoline/cargoline/pkg/cargo_server/webhook"
	"github.com/cargoline/cargoline/pkg/config"
	"github.com/cargoline/cargoline/pkg/util"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/sirupsen/logrus"
)

const appName string = "cargo-server"

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the server"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Sweep struct {
	} `cmd:"" help:"Run a single status sweep and exit"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"existingfile" default:"config.yaml"`
}

type Config struct {
	Database util.PostgresDatabaseConfig `yaml:"database"`
	Server   struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Sweeper struct {
		CheckInterval int `yaml:"check_interval"`
		PageSize      int `yaml:"page_size"`
	} `yaml:"sweeper"`
	Webhook struct {
		CheckInterval int `yaml:"check_interval"`
		BatchSize     int `yaml:"batch_size"`
		Timeout       int `yaml:"timeout"`
		MaxRetry      int `yaml:"max_retry"`
	} `yaml:"webhook"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

type App struct{}

func (a *App) Run() {
	formatter.InitLogger()

	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "migrate":
		a.runMigrate(cli)
	case "sweep":
		a.runSweep(cli)
	default:
	}
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()

	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			os.Exit(128)
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	apiConfig := api.APIConfig{
		Database:     appConfig.Database,
		LocalAddress: net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port)),
	}
	apiServer, err := api.NewAPIWithConfig(apiConfig)
	if err != nil {
		logrus.Errorf("failed to create API server: %v", err)
		os.Exit(128)
	}

	statusSweeper, err := a.newSweeper(appConfig)
	if err != nil {
		logrus.Errorf("failed to create status sweeper: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processorConfig := webhook.Config{
		Database:      appConfig.Database,
		CheckInterval: appConfig.Webhook.CheckInterval,
		BatchSize:     appConfig.Webhook.BatchSize,
		Timeout:       appConfig.Webhook.Timeout,
		MaxRetry:      appConfig.Webhook.MaxRetry,
	}
	processor, err := webhook.NewProcessorWithConfig(processorConfig)
	if err != nil {
		logrus.Errorf("failed to create webhook processor: %v", err)
		os.Exit(128)
	}

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		if err := apiServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()
		processor.Run(ctx)
	}(wg)

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()
		statusSweeper.Run(ctx)
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
}

func (a *App) runMigrate(cli CLI) {
	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	// set up the logger
	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing
		}
	})

	// setup database connection
	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	// create the database if it doesn't exist
	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	// run the migrations
	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
}

func (a *App) runSweep(cli CLI) {
	ctx := context.Background()

	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	statusSweeper, err := a.newSweeper(appConfig)
	if err != nil {
		logrus.Errorf("failed to create status sweeper: %v", err)
		os.Exit(128)
	}

	if err := statusSweeper.SweepOnce(ctx, time.Now()); err != nil {
		logrus.Errorf("status sweep failed: %v", err)
		os.Exit(1)
	}
}

func (a *App) newSweeper(appConfig Config) (*sweeper.Sweeper, error) {
	dbStorage, err := postgres.NewStorageWithConfig(appConfig.Database)
	if err != nil {
		return nil, err
	}

	webhookCtrl := webhook.NewWebhookController(dbStorage)
	invoiceGen := invoice.NewGenerator(dbStorage, webhookCtrl)
	lifecycleCtrl := lifecycle.NewLifecycleController(
		dbStorage,
		dbStorage,
		invoiceGen,
		webhookCtrl,
		lifecycle.DefaultLocationRules(),
		lifecycle.DefaultTransitTimes(),
	)

	return sweeper.NewSweeper(sweeper.Config{
		CheckInterval: appConfig.Sweeper.CheckInterval,
		PageSize:      appConfig.Sweeper.PageSize,
	}, lifecycleCtrl), nil
}
