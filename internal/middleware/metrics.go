package middleware

import (
	"context"
	"errors"
	"reflect"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/agencydesk/internal/state"
	"github.com/mmynk/agencydesk/internal/storage"
)

// Metrics holds the Prometheus collectors of the server.
type Metrics struct {
	requests         *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	collectionItems  *prometheus.GaugeVec
	collectionWrites *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agencydesk",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agencydesk",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling time by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		collectionItems: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "agencydesk",
			Name:      "collection_items",
			Help:      "Records held in each collection.",
		}, []string{"collection"}),
		collectionWrites: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agencydesk",
			Name:      "collection_changes_total",
			Help:      "Committed changes per collection.",
		}, []string{"collection"}),
	}
}

// Interceptor counts and times every RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.requests.WithLabelValues(procedure, resultCode(err)).Inc()
			return resp, err
		}
	}
}

func resultCode(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}

// Changed implements state.Observer.
func (m *Metrics) Changed(_ context.Context, key storage.Key, value any) {
	m.collectionWrites.WithLabelValues(string(key)).Inc()
	m.collectionItems.WithLabelValues(string(key)).Set(size(value))
}

// Seed sets the collection gauges from the loaded state.
func (m *Metrics) Seed(st *state.State) {
	snap := st.Snapshot()
	sizes := map[storage.Key]any{
		storage.KeySettings:      snap.Settings,
		storage.KeyCosts:         snap.Costs,
		storage.KeyServices:      snap.Services,
		storage.KeyClients:       snap.Clients,
		storage.KeyQuotes:        snap.Quotes,
		storage.KeyAssets:        snap.Assets,
		storage.KeyMonthlySales:  snap.MonthlySales,
		storage.KeyTermTemplates: snap.TermTemplates,
	}
	for key, value := range sizes {
		m.collectionItems.WithLabelValues(string(key)).Set(size(value))
	}
}

// size is the length of a collection; single documents count as one.
func size(value any) float64 {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice {
		return float64(v.Len())
	}
	return 1
}
