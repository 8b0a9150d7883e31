package sparql

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphly_sparql_requests",
		Help: "Number of requests issued, by technology and kind.",
	}, []string{"technology", "kind"})
	mRequestSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "graphly_sparql_request_seconds",
		Help: "Time for one request round trip.",
	}, []string{"technology"})

	mInsertBatch = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "graphly_sparql_insert_batch",
		Help: "Number of triples in one INSERT DATA chunk.",
	})
	mUploadChunkLines = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "graphly_sparql_upload_chunk_lines",
		Help: "Number of lines in one bulk-upload chunk.",
	})
)
