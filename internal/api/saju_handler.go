package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/phrazzld/saju-api/internal/api/shared"
	"github.com/phrazzld/saju-api/internal/report"
	"github.com/phrazzld/saju-api/internal/service"
)

// Query parameters understood by the chart endpoints.
const (
	formatParam      = "format"
	formatText       = "text"
	onlyPresentParam = "only_present"
)

// SajuHandler handles chart, element, star and reading requests
type SajuHandler struct {
	readingService service.ReadingService
	maxBodyBytes   int64
}

// NewSajuHandler creates a new SajuHandler. maxBodyBytes bounds request
// bodies; zero disables the limit.
func NewSajuHandler(readingService service.ReadingService, maxBodyBytes int64) *SajuHandler {
	return &SajuHandler{
		readingService: readingService,
		maxBodyBytes:   maxBodyBytes,
	}
}

// decodeRequest reads and validates a JSON body into v. It writes the error
// response and returns false when the body is unusable.
func decodeRequest(
	w http.ResponseWriter,
	r *http.Request,
	v interface{},
	maxBodyBytes int64,
) bool {
	if err := shared.DecodeJSONBody(w, r, v, maxBodyBytes); err != nil {
		if errors.Is(err, shared.ErrBodyTooLarge) {
			// Oversized bodies are logged at WARN to surface abusive clients.
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err,
				shared.WithElevatedLogLevel())
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		HandleValidationError(w, r, err)
		return false
	}

	return true
}

func (h *SajuHandler) decodeBirth(w http.ResponseWriter, r *http.Request) (BirthRequest, bool) {
	var req BirthRequest
	if !decodeRequest(w, r, &req, h.maxBodyBytes) {
		return BirthRequest{}, false
	}
	return req, true
}

// Pillars handles POST /api/pillars requests
func (h *SajuHandler) Pillars(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBirth(w, r)
	if !ok {
		return
	}

	fp, err := h.readingService.CalculatePillars(r.Context(), req.BirthDate, req.BirthTime)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate pillars")
		return
	}

	if wantsText(r) {
		shared.RespondWithText(w, r, http.StatusOK, report.Chart(fp))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pillarsToResponse(fp))
}

// Elements handles POST /api/elements requests
func (h *SajuHandler) Elements(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBirth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	fp, err := h.readingService.CalculatePillars(ctx, req.BirthDate, req.BirthTime)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate pillars")
		return
	}

	profile, err := h.readingService.AnalyzeFiveElements(ctx, fp)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to analyze five elements")
		return
	}

	if wantsText(r) {
		shared.RespondWithText(w, r, http.StatusOK, report.FiveElements(profile))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ElementsResponse{
		Pillars:  pillarsToResponse(fp),
		Elements: profile,
	})
}

// Stars handles POST /api/stars requests. ?only_present=true drops the
// stars that did not match.
func (h *SajuHandler) Stars(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBirth(w, r)
	if !ok {
		return
	}

	reading, err := h.readingService.CalculateStars(r.Context(), req.BirthDate, req.BirthTime)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate stars")
		return
	}

	if wantsText(r) {
		shared.RespondWithText(w, r, http.StatusOK, report.Stars(reading.Stars))
		return
	}

	list, names := starList(reading.Stars, onlyPresent(r))
	shared.RespondWithJSON(w, r, http.StatusOK, StarsResponse{
		Pillars: pillarsToResponse(reading.Pillars),
		Stars:   list,
		Present: names,
	})
}

// Reading handles POST /api/reading requests. ?format=text returns the
// rendered report instead of JSON.
func (h *SajuHandler) Reading(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBirth(w, r)
	if !ok {
		return
	}

	reading, err := h.readingService.Reading(r.Context(), req.BirthDate, req.BirthTime)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute reading")
		return
	}

	if wantsText(r) {
		shared.RespondWithText(w, r, http.StatusOK,
			report.Full(reading.Pillars, reading.Elements, reading.Stars))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, readingToResponse(reading, onlyPresent(r)))
}

// Health handles GET /health requests
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

func wantsText(r *http.Request) bool {
	return r.URL.Query().Get(formatParam) == formatText
}

func onlyPresent(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(onlyPresentParam))
	return err == nil && v
}
