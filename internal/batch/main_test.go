package batch

import (
	"testing"

	"go.uber.org/goleak"
)

// Workers must all exit when Run returns, including on cancellation.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
