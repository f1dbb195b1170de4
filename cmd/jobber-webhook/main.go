// Command jobber-webhook registers a Jobber webhook subscription, prints every
// delivery as a JSON line and removes the subscription on shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gookit/goutil/envutil"
	jsoniter "github.com/json-iterator/go"
	gql "github.com/lukaszraczylo/go-jobber-graphql"
	"github.com/lukaszraczylo/go-jobber-graphql/jobber"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
	libpack_store "github.com/lukaszraczylo/go-jobber-graphql/store"
	"github.com/lukaszraczylo/go-jobber-graphql/trigger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type config struct {
	listen       string
	publicURL    string
	topic        jobber.Topic
	redisAddr    string
	clientID     string
	clientSecret string
	refreshToken string
}

func loadConfig() (config, error) {
	cfg := config{
		listen:       envutil.Getenv("WEBHOOK_LISTEN", ":8080"),
		publicURL:    envutil.Getenv("WEBHOOK_PUBLIC_URL", ""),
		topic:        jobber.Topic(envutil.Getenv("WEBHOOK_TOPIC", string(jobber.TopicJobCreate))),
		redisAddr:    envutil.Getenv("REDIS_ADDR", ""),
		clientID:     envutil.Getenv("JOBBER_CLIENT_ID", ""),
		clientSecret: envutil.Getenv("JOBBER_CLIENT_SECRET", ""),
		refreshToken: envutil.Getenv("JOBBER_REFRESH_TOKEN", ""),
	}
	if cfg.publicURL == "" {
		return cfg, errors.New("WEBHOOK_PUBLIC_URL is required")
	}
	if !cfg.topic.Valid() {
		return cfg, fmt.Errorf("unknown WEBHOOK_TOPIC %q", cfg.topic)
	}
	return cfg, nil
}

// lineWriter prints items as JSON lines. Deliveries may arrive concurrently.
type lineWriter struct {
	out io.Writer
	mu  sync.Mutex
}

func (lw *lineWriter) emit(item gql.Record) {
	line, err := json.Marshal(item)
	if err != nil {
		return
	}
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, _ = lw.out.Write(append(line, '\n'))
}

func newRouter(receiver http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Post("/webhook", receiver.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func newStore(ctx context.Context, addr string) (libpack_store.Store, func(), error) {
	if addr == "" {
		mem := libpack_store.NewMemory(0)
		return mem, mem.Stop, nil
	}
	rs, err := libpack_store.NewRedisFromAddr(ctx, addr)
	if err != nil {
		return nil, nil, err
	}
	return rs, func() { _ = rs.Close() }, nil
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	client := gql.NewConnection()
	if cfg.refreshToken != "" {
		creds := gql.Credentials{ClientID: cfg.clientID, ClientSecret: cfg.clientSecret, RefreshToken: cfg.refreshToken}
		client.SetTokenSource(creds.TokenSource(ctx))
	}
	logger := client.Logger
	node := jobber.NewNode(client, logger)

	store, closeStore, err := newStore(ctx, cfg.redisAddr)
	if err != nil {
		return err
	}
	defer closeStore()

	lifecycle := trigger.NewLifecycle(node, store, cfg.publicURL, cfg.topic)
	exists, err := lifecycle.CheckExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := lifecycle.Create(ctx); err != nil {
			return err
		}
	}

	lw := &lineWriter{out: out}
	server := &http.Server{
		Addr:              cfg.listen,
		Handler:           newRouter(trigger.NewReceiver(lw.emit, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(&logging.LogMessage{
			Message: "Listening for webhook deliveries",
			Pairs:   map[string]any{"addr": cfg.listen, "topic": string(cfg.topic)},
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	if _, derr := lifecycle.Delete(shutdownCtx); derr != nil && err == nil {
		err = derr
	}
	return err
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
