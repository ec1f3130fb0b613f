package api

import (
	"github.com/phrazzld/saju-api/internal/batch"
	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/phrazzld/saju-api/internal/domain/pillars"
	"github.com/phrazzld/saju-api/internal/domain/stars"
	"github.com/phrazzld/saju-api/internal/service"
)

// BirthRequest defines the payload shared by every chart endpoint.
// Only presence and an upper length bound are checked here. The pillar
// parser accepts unpadded forms such as "9:5" and reports field-level
// reasons for everything else.
type BirthRequest struct {
	// BirthDate is a Gregorian date in YYYY-MM-DD form
	BirthDate string `json:"birth_date" validate:"required,max=10"`

	// BirthTime is a local clock time in HH:MM or HH:MM:SS form
	BirthTime string `json:"birth_time" validate:"required,max=8"`
}

// BatchRecord is one entry of a batch request. ID is echoed in the result
// and generated when empty. Its birth fields are not validated up front: a
// bad record fails on its own in the results.
type BatchRecord struct {
	ID string `json:"id"`
	BirthRequest
}

// BatchRequest carries the records of a batch reading. Validation covers
// the envelope only.
type BatchRequest struct {
	Records []BatchRecord `json:"records" validate:"required,min=1"`
}

// PillarsResponse is the flat form of a chart.
type PillarsResponse struct {
	YearPillar  string `json:"year_pillar"`
	MonthPillar string `json:"month_pillar"`
	DayPillar   string `json:"day_pillar"`
	HourPillar  string `json:"hour_pillar"`
	BirthDate   string `json:"birth_date"`
	BirthTime   string `json:"birth_time"`
}

// ElementsResponse pairs a chart with its element profile.
type ElementsResponse struct {
	Pillars  PillarsResponse           `json:"pillars"`
	Elements domain.FiveElementProfile `json:"five_elements"`
}

// StarsResponse pairs a chart with star matches in catalog order.
type StarsResponse struct {
	Pillars PillarsResponse    `json:"pillars"`
	Stars   []domain.StarMatch `json:"stars"`
	// Present names the rules that matched, in catalog order
	Present []string `json:"present"`
}

// ReadingResponse is the complete reading.
type ReadingResponse struct {
	Pillars    PillarsResponse           `json:"pillars"`
	SolarYear  int                       `json:"solar_year"`
	SolarMonth int                       `json:"solar_month"`
	HourWindow pillars.HourWindow        `json:"hour_window"`
	Elements   domain.FiveElementProfile `json:"five_elements"`
	Stars      []domain.StarMatch        `json:"stars"`
	Present    []string                  `json:"present"`
}

// BatchResult is the outcome for one record of a batch.
type BatchResult struct {
	ID      string           `json:"id"`
	Status  batch.Status     `json:"status"`
	Reading *ReadingResponse `json:"reading,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
	Failed  int           `json:"failed"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

func pillarsToResponse(fp domain.FourPillars) PillarsResponse {
	return PillarsResponse{
		YearPillar:  fp.Year().String(),
		MonthPillar: fp.Month().String(),
		DayPillar:   fp.Day().String(),
		HourPillar:  fp.Hour().String(),
		BirthDate:   fp.BirthDate,
		BirthTime:   fp.BirthTime,
	}
}

// starList orders matches by catalog and optionally drops absent stars.
func starList(matches map[string]domain.StarMatch, onlyPresent bool) ([]domain.StarMatch, []string) {
	present := stars.Present(matches)
	names := make([]string, len(present))
	for i, m := range present {
		names[i] = m.Rule
	}
	if onlyPresent {
		if present == nil {
			present = []domain.StarMatch{}
		}
		return present, names
	}
	return stars.Ordered(matches), names
}

func readingToResponse(r *service.Reading, onlyPresent bool) ReadingResponse {
	list, names := starList(r.Stars, onlyPresent)
	return ReadingResponse{
		Pillars:    pillarsToResponse(r.Pillars),
		SolarYear:  r.SolarYear,
		SolarMonth: r.SolarMonth,
		HourWindow: r.HourWindow,
		Elements:   r.Elements,
		Stars:      list,
		Present:    names,
	}
}

func batchToResponse(results []batch.Result, onlyPresent bool) BatchResponse {
	resp := BatchResponse{Results: make([]BatchResult, len(results))}
	for i, r := range results {
		out := BatchResult{ID: r.ID, Status: r.Status}
		if r.Status == batch.StatusFailed {
			out.Error = GetSafeErrorMessage(r.Err)
			resp.Failed++
		} else {
			reading := readingToResponse(r.Reading, onlyPresent)
			out.Reading = &reading
		}
		resp.Results[i] = out
	}
	return resp
}
