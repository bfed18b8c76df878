package observability

import (
	"fmt"
	"log"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

// PromObs backs the Observability port with Prometheus collectors. Log calls
// are fanned out to an optional EventLog; errors additionally go to stderr.
type PromObs struct {
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer

	events ports.EventLog
}

func NewPromObs(events ports.EventLog) *PromObs {
	produced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pflow_packets_produced_total",
		Help: "Packets successfully enqueued by the producer pool.",
	})
	consumed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pflow_packets_consumed_total",
		Help: "Packets dequeued and handed to the sink.",
	})
	bytesConsumed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pflow_bytes_consumed_total",
		Help: "Payload bytes delivered to the sink.",
	})
	zeroReads := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pflow_zero_reads_total",
		Help: "Source reads that returned no data and were discarded.",
	})
	sinkFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pflow_sink_write_failed_total",
		Help: "Sink writes that returned an error.",
	})
	queueLen := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pflow_queue_length",
		Help: "Current number of packets buffered in the bounded queue.",
	})
	sinkLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pflow_sink_write_seconds",
		Help:    "Latency of a single sink write.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	prometheus.MustRegister(produced, consumed, bytesConsumed, zeroReads, sinkFailed, queueLen, sinkLatency)

	return &PromObs{
		counters: map[string]prometheus.Counter{
			"pflow_packets_produced_total":  produced,
			"pflow_packets_consumed_total":  consumed,
			"pflow_bytes_consumed_total":    bytesConsumed,
			"pflow_zero_reads_total":        zeroReads,
			"pflow_sink_write_failed_total": sinkFailed,
		},
		gauges: map[string]prometheus.Gauge{
			"pflow_queue_length": queueLen,
		},
		histos: map[string]prometheus.Observer{
			"pflow_sink_write_seconds": sinkLatency,
		},
		events: events,
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.appendEvent(msg, nil, fields)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	if err != nil {
		log.Printf("ERROR: %s: %v", msg, err)
	}
	p.appendEvent(msg, err, fields)
}

func (p *PromObs) LogCritical(msg string, err error, fields ...ports.Field) {
	if err != nil {
		log.Printf("CRITICAL: %s: %v", msg, err)
	}
	p.appendEvent(msg, err, fields)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func (p *PromObs) appendEvent(msg string, err error, fields []ports.Field) {
	if p.events == nil {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	if err != nil {
		fmt.Fprintf(&b, " err=%v", err)
	}
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	p.events.Append(b.String())
}

var _ ports.Observability = (*PromObs)(nil)
