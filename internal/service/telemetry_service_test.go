package service

import (
	"fmt"
	"testing"

	"cricguess/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelemetryService_CloseFlushesEverything(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewTelemetryService(repo)
	svc.Start()

	for i := 0; i < 120; i++ {
		svc.Emit(model.GameEvent{
			Type:     model.EventGuessEvaluated,
			DeviceID: fmt.Sprintf("dev-%d", i),
			PuzzleID: 1,
		})
	}
	svc.Close()

	assert.Equal(t, 120, repo.total(), "nothing buffered is lost on shutdown")
	for _, batch := range repo.batches {
		assert.LessOrEqual(t, len(batch), telemetryBatchSize)
	}
}

func TestTelemetryService_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewTelemetryService(repo)

	// The writer is not running, so the buffer fills and the overflow
	// must be dropped without blocking this goroutine.
	for i := 0; i < 400; i++ {
		svc.Emit(model.GameEvent{Type: model.EventGuessEvaluated, PuzzleID: 1})
	}

	svc.Start()
	svc.Close()

	require.NotZero(t, repo.total())
	assert.Less(t, repo.total(), 400, "overflow events are dropped, not queued")
}
