package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"wavepack/internal/auth"
	"wavepack/internal/calc/batch"
	"wavepack/internal/calc/importer"
	"wavepack/internal/calc/report"
	"wavepack/internal/calc/wavepack"
	"wavepack/internal/config"
	"wavepack/internal/health"
	"wavepack/internal/metrics"
	"wavepack/internal/props"
	"wavepack/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func registerRoutes(router *mux.Router, cfg config.Config, env *auth.Env) {
	lib := props.NewLibrary(cfg.ExtraFluids, cfg.ExtraMaterial)
	settings := wavepack.Settings{
		Samples:    cfg.Samples,
		SweepDecLo: cfg.SweepDecLo,
		SweepDecHi: cfg.SweepDecHi,
	}

	router.HandleFunc("/healthz", health.Healthz).Methods("GET")
	router.HandleFunc("/readyz", health.Readyz).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.HandleFunc("/login", env.LoginHandler).Methods("POST")
	api.HandleFunc("/register", env.RegisterHandler).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(env.Middleware)

	solveH := &wavepack.Handler{Lib: lib, Settings: settings}
	batchH := &batch.Handler{Lib: lib, Settings: settings}
	importH := &importer.Handler{Lib: lib, Settings: settings}
	reportH := &report.Handler{}

	secureAPI.HandleFunc("/tools/wavepack/solve", solveH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/wavepack/options", solveH.Options).Methods("GET")
	secureAPI.HandleFunc("/tools/wavepack/batch", batchH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/wavepack/import", importH.Solve).Methods("POST")
	secureAPI.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, relying on the environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		logrus.Fatal("TOKEN_KEY environment variable is not set")
	}

	cfgPath := os.Getenv("WAVEPACK_CONFIG")
	if cfgPath == "" {
		cfgPath = "wavepack.ini"
	}
	cfg := config.Load(cfgPath)

	db := auth.InitDB()
	defer db.Close()

	env := &auth.Env{JWTKey: []byte(tokenKey), Repo: repo.NewPostgresUserDB(db)}

	router := mux.NewRouter()
	registerRoutes(router, cfg, env)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: metrics.Middleware(CORS(router)),
	}

	logrus.WithField("addr", cfg.Addr).Info("starting server")
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server error")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("server shutdown failed")
	}
	logrus.Info("server stopped")

	wg.Wait()
}
