package service

import (
	"context"
	"log"
	"time"

	"cricguess/internal/model"
	"cricguess/internal/repository"
)

const (
	telemetryBatchSize = 50
	telemetryInterval  = 500 * time.Millisecond
)

// TelemetryService buffers game events and writes them to Mongo in batches.
// Emit never blocks: a full buffer drops the event with a log line, because
// losing telemetry is always preferable to stalling a guess.
type TelemetryService struct {
	eventRepo repository.EventRepo
	buffer    chan model.GameEvent
	done      chan struct{}
	stopped   chan struct{}
}

// NewTelemetryService creates a new telemetry service
func NewTelemetryService(eventRepo repository.EventRepo) *TelemetryService {
	return &TelemetryService{
		eventRepo: eventRepo,
		buffer:    make(chan model.GameEvent, 256),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// Emit queues an event for the background writer
func (s *TelemetryService) Emit(event model.GameEvent) {
	select {
	case s.buffer <- event:
	default:
		log.Println("telemetry buffer full, dropping event")
	}
}

// Start launches the background batch writer
func (s *TelemetryService) Start() {
	go s.writeLoop()
}

// Close stops the writer after flushing everything still buffered
func (s *TelemetryService) Close() {
	close(s.done)
	<-s.stopped
}

func (s *TelemetryService) writeLoop() {
	defer close(s.stopped)

	ticker := time.NewTicker(telemetryInterval)
	defer ticker.Stop()

	batch := make([]model.GameEvent, 0, telemetryBatchSize)

	for {
		select {
		case ev := <-s.buffer:
			batch = append(batch, ev)
			if len(batch) >= telemetryBatchSize {
				batch = s.flush(batch)
			}
		case <-ticker.C:
			batch = s.flush(batch)
		case <-s.done:
			for {
				select {
				case ev := <-s.buffer:
					batch = append(batch, ev)
					if len(batch) >= telemetryBatchSize {
						batch = s.flush(batch)
					}
				default:
					s.flush(batch)
					return
				}
			}
		}
	}
}

func (s *TelemetryService) flush(batch []model.GameEvent) []model.GameEvent {
	if len(batch) == 0 {
		return batch
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.eventRepo.InsertBatch(ctx, batch); err != nil {
		log.Printf("telemetry batch write failed: %v", err)
	}
	return batch[:0]
}
