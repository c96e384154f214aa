package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/statisticsnorway/dapla-start-api/pkg/auth"
	"github.com/statisticsnorway/dapla-start-api/pkg/config"
	"github.com/statisticsnorway/dapla-start-api/pkg/jira"
	"github.com/statisticsnorway/dapla-start-api/pkg/klass"
	"github.com/statisticsnorway/dapla-start-api/pkg/onboarding"
	"github.com/statisticsnorway/dapla-start-api/pkg/requestlogger"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core"
	apiclients "github.com/statisticsnorway/dapla-start-api/pkg/service/core/api"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/handlers"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/routes"
	"github.com/statisticsnorway/dapla-start-api/pkg/userdirectory"
	"github.com/statisticsnorway/dapla-start-api/pkg/version"
)

var (
	configFilePath = flag.String("config", "config.yaml", "path to config file")
	printRoutes    = flag.Bool("print-routes", false, "print the routes and exit")
)

const (
	envPrefix       = "DAPLA_START"
	metricNamespace = "dapla_start_api"
	klassTimeout    = 10 * time.Second
)

func main() {
	flag.Parse()

	zlog := zerolog.New(os.Stdout).With().Timestamp().Str("app", version.Name).Logger()

	if err := godotenv.Load(); err != nil {
		zlog.Debug().Err(err).Msg("no .env file loaded")
	}

	fileParts, err := config.ProcessConfigPath(*configFilePath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("processing config path")
	}

	cfg, err := config.NewFileSystemLoader().Load(fileParts.FileName, fileParts.Path, envPrefix, config.NewDefaultEnvBinder())
	if err != nil {
		zlog.Fatal().Err(err).Msg("loading config")
	}

	err = cfg.Validate()
	if err != nil {
		zlog.Fatal().Err(err).Msg("validating config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		zlog.Fatal().Err(err).Msg("parsing log level")
	}

	zlog = zlog.Level(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	var jiraCreator jira.Creator = jira.New(cfg.Jira.APIURL, cfg.Jira.Authorization(), &http.Client{
		Timeout: time.Duration(cfg.Jira.TimeoutSeconds) * time.Second,
	})
	if cfg.Jira.DryRun {
		zlog.Warn().Msg("jira dry run enabled, issues are not sent")
		jiraCreator = jira.NewStatic(cfg.Jira.APIURL)
	}

	klassFetcher := klass.New(cfg.Klass.APIURL, &http.Client{
		Timeout: klassTimeout,
	})

	usersFetcher, err := userdirectory.New(ctx, cfg.Users.Source)
	if err != nil {
		zlog.Fatal().Err(err).Msg("setting up user directory")
	}

	var claimsReader auth.ClaimsReader = auth.NewUnverifiedReader()
	if cfg.Auth.IssuerURL != "" {
		claimsReader, err = auth.NewOIDCReader(ctx, cfg.Auth.IssuerURL, cfg.Auth.ClientID)
		if err != nil {
			zlog.Fatal().Err(err).Msg("setting up token verification")
		}
	}

	metrics := core.NewMetrics(metricNamespace)

	apiClients := apiclients.NewClients(
		jiraCreator,
		klassFetcher,
		usersFetcher,
		claimsReader,
		cfg.Slack.WebhookURL,
		zlog.With().Str("subsystem", "api_clients").Logger(),
	)

	services := core.NewServices(
		core.ServicesConfig{
			APIVersion:          version.Version,
			SectionalDivisionID: cfg.Klass.SectionalDivisionID,
			SubjectAreaID:       cfg.Klass.SubjectAreaID,
			Options: []onboarding.Option{
				onboarding.WithGroupDomain(cfg.Onboarding.GroupDomain),
				onboarding.WithProjectKey(cfg.Jira.ProjectKey),
				onboarding.WithIssueType(cfg.Jira.IssueType),
			},
		},
		apiClients,
		metrics,
		time.Now,
		zlog.With().Str("subsystem", "services").Logger(),
	)

	h := handlers.NewHandlers(services, apiClients.ReporterAPI)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestlogger.Middleware(zlog, "/health/", "/internal/metrics"))
	router.Use(middleware.Recoverer)

	routes.Add(router,
		routes.NewOnboardingRoutes(routes.NewOnboardingEndpoints(zlog, h.OnboardingHandler)),
		routes.NewUserRoutes(routes.NewUserEndpoints(zlog, h.UserHandler)),
		routes.NewClassificationRoutes(routes.NewClassificationEndpoints(zlog, h.ClassificationHandler)),
		routes.NewHealthRoutes(routes.NewHealthEndpoints(zlog, h.HealthHandler)),
		routes.NewMetricsRoutes(routes.NewMetricsEndpoints(zlog, prom(metrics.Collectors()...))),
	)

	if *printRoutes {
		err = routes.Print(router, os.Stdout)
		if err != nil {
			zlog.Fatal().Err(err).Msg("printing routes")
		}

		return
	}

	server := http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Address, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info().Str("version", version.Version).Msgf("listening on %s", server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("serving")
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn().Err(err).Msg("shutdown error")
	}
}

func prom(cols ...prometheus.Collector) *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewGoCollector())
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(cols...)

	return r
}
