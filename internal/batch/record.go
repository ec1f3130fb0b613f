package batch

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/saju-api/internal/service"
)

// ErrInvalidInput is returned when the input stream cannot be decoded.
var ErrInvalidInput = errors.New("invalid batch input")

// Record is one birth moment to compute. ID is assigned when empty.
type Record struct {
	ID        string `json:"id"`
	BirthDate string `json:"birth_date"`
	BirthTime string `json:"birth_time"`
}

// Status of a computed record.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Result is the outcome for one record.
type Result struct {
	ID      string           `json:"id"`
	Status  Status           `json:"status"`
	Reading *service.Reading `json:"reading,omitempty"`
	Error   string           `json:"error,omitempty"`

	// Err is the failure behind Error, for callers that map errors.
	Err error `json:"-"`
}

// ReadRecords decodes one JSON object per line. Blank lines and lines
// starting with # are skipped.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var rec Record
		dec := json.NewDecoder(strings.NewReader(text))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidInput, line, err)
		}
		records = append(records, rec.withID())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return records, nil
}

// withID returns rec with a random ID when it has none.
func (r Record) withID() Record {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return r
}
