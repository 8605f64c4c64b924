package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitrollup/internal/activity"
	"github.com/2beens/fitrollup/internal/auth"
	"github.com/2beens/fitrollup/internal/cache"
	"github.com/2beens/fitrollup/internal/cardio"
	"github.com/2beens/fitrollup/internal/config"
	"github.com/2beens/fitrollup/internal/db"
	"github.com/2beens/fitrollup/internal/gym"
	"github.com/2beens/fitrollup/internal/mcp"
	"github.com/2beens/fitrollup/internal/middleware"
	"github.com/2beens/fitrollup/internal/nutrition"
	"github.com/2beens/fitrollup/internal/store"
	"github.com/2beens/fitrollup/internal/telemetry/metrics"
	"github.com/2beens/fitrollup/internal/telemetry/tracing"
	"github.com/2beens/fitrollup/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	authService *auth.Service

	activityService  *activity.Service
	gymService       *gym.Service
	cardioService    *cardio.Service
	nutritionService *nutrition.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	stopSessionCleanup func()
}

type NewServerParams struct {
	Config           *config.Config
	VersionInfo      string
	RedisPassword    string
	PostgresPassword string
	// single user, used with the memory data source
	Username                string
	PasswordHash            string
	HoneycombTracingEnabled bool
}

type sources struct {
	activity  store.Source[activity.Day]
	gym       store.Source[gym.Set]
	cardio    store.Source[cardio.Session]
	nutrition store.Source[nutrition.Meal]
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
	}

	dataSource, ok := store.ParseKind(cfg.DataSource)
	if !ok {
		return nil, fmt.Errorf("unknown data source: %s", cfg.DataSource)
	}

	var collectors []prometheus.Collector
	if dataSource == store.KindPostgres {
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		s.dbPool = dbPool

		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		} else if err := db.EnsureSchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, err
		}

		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	s.promRegistry = metrics.SetupPrometheus(collectors...)
	s.metricsManager = metrics.NewManager("fitrollup", "main", s.promRegistry)

	cacheBackend := cache.Backend(cfg.CacheBackend)
	if cfg.AuthEnabled || cacheBackend == cache.BackendRedis {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := s.redisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitrollup-backend", s.redisClient)
	if err != nil {
		s.closeStorage()
		return nil, err
	}
	s.otelShutdown = otelShutdown

	var summaries *cache.Summaries
	switch cacheBackend {
	case cache.BackendRedis:
		summaries = cache.NewSummaries(cache.NewRedis(s.redisClient), cfg.SummaryCacheTTL(), cfg.WindowSize)
	case cache.BackendLocal:
		summaries = cache.NewSummaries(cache.NewLocal(cfg.LocalCacheSizeMB), cfg.SummaryCacheTTL(), cfg.WindowSize)
	default:
		log.Debug("summary cache disabled")
	}

	src := s.newSources(dataSource)
	s.activityService = activity.NewService(src.activity, summaries, s.metricsManager)
	s.gymService = gym.NewService(src.gym, summaries, s.metricsManager)
	s.cardioService = cardio.NewService(src.cardio, summaries, s.metricsManager)
	s.nutritionService = nutrition.NewService(src.nutrition, summaries, s.metricsManager)

	if cfg.AuthEnabled {
		if err := s.setupAuth(dataSource, params.Username, params.PasswordHash); err != nil {
			s.closeStorage()
			return nil, err
		}
	}

	return s, nil
}

func (s *Server) newSources(kind store.Kind) sources {
	if kind == store.KindMemory {
		log.Warn("using in-memory data source, nothing will be persisted")
		return sources{
			activity:  store.NewMemory[activity.Day](),
			gym:       store.NewMemory[gym.Set](),
			cardio:    store.NewMemory[cardio.Session](),
			nutrition: store.NewMemory[nutrition.Meal](),
		}
	}
	return sources{
		activity:  activity.NewRepo(s.dbPool),
		gym:       gym.NewRepo(s.dbPool),
		cardio:    cardio.NewRepo(s.dbPool),
		nutrition: nutrition.NewRepo(s.dbPool),
	}
}

func (s *Server) setupAuth(kind store.Kind, username, passwordHash string) error {
	var users interface {
		ByUsername(ctx context.Context, username string) (*auth.User, error)
	}
	if kind == store.KindMemory {
		if username == "" || passwordHash == "" {
			return errors.New("auth enabled with memory data source, but no user configured")
		}
		users = auth.NewStaticUserRepo(username, passwordHash)
	} else {
		users = auth.NewPgUserRepo(s.dbPool)
	}

	s.authService = auth.NewService(users, auth.DefaultTTL, s.redisClient)

	stop, err := auth.StartSessionCleanup(s.authService, auth.DefaultCleanupSchedule, time.Minute)
	if err != nil {
		return err
	}
	s.stopSessionCleanup = stop

	return nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET", "OPTIONS").Name("root")

	windowSize, maxWindowSize := s.config.WindowSize, s.config.MaxWindowSize

	activityHandler := activity.NewHandler(s.activityService, windowSize, maxWindowSize)
	r.HandleFunc("/activity", activityHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-activity")
	r.HandleFunc("/activity/summary", activityHandler.HandleSummary).Methods("GET", "OPTIONS").Name("activity-summary")

	gymHandler := gym.NewHandler(s.gymService, windowSize, maxWindowSize)
	r.HandleFunc("/gym/sets", gymHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-gym-set")
	r.HandleFunc("/gym/summary", gymHandler.HandleSummary).Methods("GET", "OPTIONS").Name("gym-summary")
	r.HandleFunc("/gym/groups", gymHandler.HandleGroups).Methods("GET", "OPTIONS").Name("gym-groups")
	r.HandleFunc("/gym/1rm", gymHandler.HandleOneRepMax).Methods("GET", "OPTIONS").Name("gym-1rm")

	cardioHandler := cardio.NewHandler(s.cardioService, windowSize, maxWindowSize)
	r.HandleFunc("/cardio", cardioHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-cardio")
	r.HandleFunc("/cardio/summary", cardioHandler.HandleSummary).Methods("GET", "OPTIONS").Name("cardio-summary")

	nutritionHandler := nutrition.NewHandler(s.nutritionService, windowSize, maxWindowSize)
	r.HandleFunc("/nutrition/meals", nutritionHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-meal")
	r.HandleFunc("/nutrition/summary", nutritionHandler.HandleSummary).Methods("GET", "OPTIONS").Name("nutrition-summary")

	mcpHandler := mcp.NewHTTPHandler(mcp.Services{
		Activity:  s.activityService,
		Gym:       s.gymService,
		Cardio:    s.cardioService,
		Nutrition: s.nutritionService,
	}, windowSize, maxWindowSize)
	r.Handle("/mcp", otelhttp.NewHandler(mcpHandler, "mcp")).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	if s.authService != nil {
		authHandler := auth.NewHandler(s.authService)
		loginSubrouter := r.PathPrefix("/a").Subrouter()
		loginSubrouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
		loginSubrouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
		loginSubrouter.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"login",
			s.config.LoginRateLimitAllowedPerMin,
			s.metricsManager,
		))
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authService, s.config.AuthEnabled)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s], version: %s", ipAndPort, s.versionInfo)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.stopSessionCleanup != nil {
		s.stopSessionCleanup()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	s.closeStorage()

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) closeStorage() {
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}
