package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"pdfshare/internal/access"
)

// Metrics holds the document counters. A nil *Metrics records nothing.
type Metrics struct {
	documentsUploaded     prometheus.Counter
	uploadBytes           prometheus.Counter
	accessDenied          *prometheus.CounterVec
	orphanCleanupFailures prometheus.Counter
}

// NewMetrics creates the document counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		documentsUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pdfshare_documents_uploaded_total",
			Help: "Total number of documents uploaded and registered.",
		}),
		uploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pdfshare_upload_bytes_total",
			Help: "Total number of document bytes written to the blob store.",
		}),
		accessDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pdfshare_access_denied_total",
			Help: "Total number of operations refused by access control.",
		}, []string{"op"}),
		orphanCleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pdfshare_orphan_cleanup_failures_total",
			Help: "Total number of blobs or comments left behind after a failed cleanup.",
		}),
	}

	for _, c := range []prometheus.Collector{m.documentsUploaded, m.uploadBytes, m.accessDenied, m.orphanCleanupFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) uploaded(size int64) {
	if m == nil {
		return
	}
	m.documentsUploaded.Inc()
	if size > 0 {
		m.uploadBytes.Add(float64(size))
	}
}

func (m *Metrics) denied(op access.Op) {
	if m == nil {
		return
	}
	m.accessDenied.WithLabelValues(string(op)).Inc()
}

func (m *Metrics) cleanupFailed() {
	if m == nil {
		return
	}
	m.orphanCleanupFailures.Inc()
}
