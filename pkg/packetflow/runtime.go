package packetflow

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ghalamif/PacketFlow/internal/adapters/logging"
	"github.com/ghalamif/PacketFlow/internal/adapters/observability"
	"github.com/ghalamif/PacketFlow/internal/adapters/queue"
	"github.com/ghalamif/PacketFlow/internal/adapters/sink"
	"github.com/ghalamif/PacketFlow/internal/adapters/source"
	"github.com/ghalamif/PacketFlow/internal/app/pipeline"
	"github.com/ghalamif/PacketFlow/internal/ports"
)

// RuntimeOption customizes the dependencies used by Runtime.
type RuntimeOption func(*runtimeOverrides)

type runtimeOverrides struct {
	source        ports.Source
	sink          ports.Sink
	queue         ports.PacketQueue
	observability ports.Observability
	events        ports.EventLog
}

// WithSource injects a custom payload source (files, sockets, simulators, etc.).
func WithSource(src Source) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.source = src
	}
}

// WithSink injects a custom sink so payloads can be sent to any downstream system.
func WithSink(s Sink) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.sink = s
	}
}

// WithQueue swaps the bounded in-memory queue for a caller-provided implementation.
func WithQueue(q PacketQueue) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.queue = q
	}
}

// WithObservability overrides the default Prometheus-based observability stack.
func WithObservability(obs Observability) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.observability = obs
	}
}

// WithEventLog overrides the default append-only file log.
func WithEventLog(events EventLog) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.events = events
	}
}

// Runtime owns the queue, the producer and consumer pools, and the ops HTTP
// server, and exposes simple lifecycle hooks for embedding PacketFlow inside
// any Go service.
type Runtime struct {
	cfg    *Config
	policy ports.Policy
	obs    ports.Observability
	queue  ports.PacketQueue
	source ports.Source
	sink   ports.Sink

	fileLog   *logging.FileLog
	db        *sql.DB
	kafkaSink *sink.KafkaSink

	opsSrv       *http.Server
	gaugeStopCh  chan struct{}
	pipelineDone chan error
	stopPipeline context.CancelFunc
}

// NewRuntime bootstraps the default adapters (random source, bounded queue,
// configured sink, file event log, Prometheus observability). Callers can use
// RuntimeOption values to override any dependency.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var overrides runtimeOverrides
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	var fileLog *logging.FileLog
	events := overrides.events
	if events == nil {
		fileLog = logging.NewFileLog(cfg.Logging.File)
		events = fileLog
	}

	obs := overrides.observability
	if obs == nil {
		obs = observability.NewPromObs(events)
	}

	q := overrides.queue
	if q == nil {
		q = queue.NewBounded(cfg.Pipeline.QueueCapacity)
	}

	src := overrides.source
	if src == nil {
		src = source.NewRand(cfg.Source.Seed)
	}

	var (
		db        *sql.DB
		kafkaSink *sink.KafkaSink
		snk       = overrides.sink
		err       error
	)
	if snk == nil {
		switch cfg.Sink.Kind {
		case "postgres":
			db, err = sql.Open("postgres", cfg.Sink.Postgres.ConnString)
			if err != nil {
				return nil, err
			}
			snk = sink.NewPostgresSink(db, cfg.Sink.Postgres.Table)
		case "kafka":
			kafkaSink = sink.NewKafkaSink(cfg.Sink.Kafka.Brokers, cfg.Sink.Kafka.Topic, cfg.Sink.Kafka.Timeout)
			snk = kafkaSink
		default:
			snk = sink.NewConsoleSink(nil)
		}
	}

	return &Runtime{
		cfg:       cfg,
		policy:    cfg.Policy(),
		obs:       obs,
		queue:     q,
		source:    src,
		sink:      snk,
		fileLog:   fileLog,
		db:        db,
		kafkaSink: kafkaSink,
	}, nil
}

// Queue exposes the underlying packet queue, mainly so callers can attach a
// Publisher or inspect depth.
func (r *Runtime) Queue() PacketQueue {
	return r.queue
}

// Start launches the producer/consumer pools and the ops server. It returns
// immediately; call Run to block on a context instead.
func (r *Runtime) Start() error {
	if r == nil {
		return fmt.Errorf("runtime is nil")
	}

	pctx, cancel := context.WithCancel(context.Background())
	r.stopPipeline = cancel
	r.pipelineDone = make(chan error, 1)
	go func() {
		r.pipelineDone <- pipeline.Run(pctx, r.source, r.queue, r.sink, r.policy, r.obs)
	}()

	r.startOps()
	return nil
}

// Run starts the runtime and blocks until the provided context is cancelled.
// Upon cancellation it attempts a graceful shutdown.
func (r *Runtime) Run(ctx context.Context) error {
	if err := r.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Shutdown(shutdownCtx)
}

// Shutdown stops the producers, drains the consumers, and tears down the ops
// server and sink connections. It is safe to call more than once.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error

	if r.stopPipeline != nil {
		r.stopPipeline()
	}
	if r.pipelineDone != nil {
		select {
		case err := <-r.pipelineDone:
			if err != nil {
				errs = append(errs, err)
			}
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("pipeline drain: %w", ctx.Err()))
		}
		r.pipelineDone = nil
	}

	if r.gaugeStopCh != nil {
		close(r.gaugeStopCh)
		r.gaugeStopCh = nil
	}
	if r.opsSrv != nil {
		if err := r.opsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
		r.opsSrv = nil
	}

	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, err)
		}
		r.db = nil
	}
	if r.kafkaSink != nil {
		if err := r.kafkaSink.Close(); err != nil {
			errs = append(errs, err)
		}
		r.kafkaSink = nil
	}
	if r.fileLog != nil {
		if err := r.fileLog.Close(); err != nil {
			errs = append(errs, err)
		}
		r.fileLog = nil
	}

	return errors.Join(errs...)
}

func (r *Runtime) startOps() {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/queuez", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{
			"len": r.queue.Len(),
			"cap": r.queue.Cap(),
		})
	})

	r.opsSrv = &http.Server{
		Addr:    r.cfg.Metrics.Addr,
		Handler: router,
	}

	go func() {
		if err := r.opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("ops server exited: %v", err)
		}
	}()

	r.gaugeStopCh = make(chan struct{})
	go r.recordQueueGauge(r.gaugeStopCh, time.Second)
}

func (r *Runtime) recordQueueGauge(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.obs.SetGauge("pflow_queue_length", float64(r.queue.Len()))
		}
	}
}
