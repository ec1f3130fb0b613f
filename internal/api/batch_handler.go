package api

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/saju-api/internal/api/shared"
	"github.com/phrazzld/saju-api/internal/batch"
)

// BatchHandler computes readings for several birth records per request.
type BatchHandler struct {
	pool         *batch.Pool
	maxRecords   int
	maxBodyBytes int64
}

// NewBatchHandler creates a new BatchHandler. Requests holding more than
// maxRecords records are rejected before any reading is computed.
func NewBatchHandler(pool *batch.Pool, maxRecords int, maxBodyBytes int64) *BatchHandler {
	return &BatchHandler{
		pool:         pool,
		maxRecords:   maxRecords,
		maxBodyBytes: maxBodyBytes,
	}
}

// Readings handles POST /api/readings/batch requests. Each record succeeds
// or fails on its own; the response is 200 whenever the batch itself was
// well formed.
func (h *BatchHandler) Readings(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeRequest(w, r, &req, h.maxBodyBytes) {
		return
	}

	if len(req.Records) > h.maxRecords {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Too many records: at most %d per request", h.maxRecords))
		return
	}

	records := make([]batch.Record, len(req.Records))
	for i, rec := range req.Records {
		records[i] = batch.Record{ID: rec.ID, BirthDate: rec.BirthDate, BirthTime: rec.BirthTime}
	}

	results, err := h.pool.Run(r.Context(), records)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute readings")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, batchToResponse(results, onlyPresent(r)))
}
