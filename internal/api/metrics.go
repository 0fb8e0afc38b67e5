package api

import (
	"encoding/json"
	"net/http"

	"github.com/setkv/setkv/internal/store"
)

// MetricsHandler returns current store metrics as JSON.
// Only works if the server was initialized with an InstrumentedStore.
func MetricsHandler(instrumentedStore *store.InstrumentedStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		metrics := instrumentedStore.GetMetrics()

		response := map[string]interface{}{
			"operations": map[string]uint64{
				"read":   metrics.ReadCount,
				"add":    metrics.AddCount,
				"remove": metrics.RemoveCount,
				"delete": metrics.DeleteCount,
				"flush":  metrics.FlushCount,
			},
			"avg_latency": map[string]string{
				"read":   metrics.ReadAvgLatency.String(),
				"add":    metrics.AddAvgLatency.String(),
				"remove": metrics.RemoveAvgLatency.String(),
				"delete": metrics.DeleteAvgLatency.String(),
				"flush":  metrics.FlushAvgLatency.String(),
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
