package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/logging"
	"github.com/salonops/salon-scheduler/internal/models"
)

// Dispatcher records lifecycle events and forwards them to the notification
// collaborator. Delivery is asynchronous and best effort: the engine never
// waits on it, and a full queue drops events rather than stalling bookings.
type Dispatcher struct {
	db        *gorm.DB
	publisher Publisher
	queue     chan Event
}

func NewDispatcher(db *gorm.DB, publisher Publisher) *Dispatcher {
	d := &Dispatcher{
		db:        db,
		publisher: publisher,
		queue:     make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.persist(ev)

		if d.publisher == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.publisher.Publish(ctx, ev); err != nil {
			logging.Get().Warn("event publish failed",
				zap.String("event_id", ev.EventID),
				zap.String("type", ev.Type),
				zap.Error(err),
			)
		}
		cancel()
	}
}

func (d *Dispatcher) persist(ev Event) {
	if d.db == nil {
		// Event log disabled.
		return
	}

	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.BookingEvent{
		EventID:    ev.EventID,
		BookingID:  ev.BookingID,
		ProviderID: ev.ProviderID,
		UserID:     ev.UserID,
		Type:       ev.Type,
		Metadata:   metaJSON,
	}

	if err := d.db.Create(&row).Error; err != nil {
		logging.Get().Warn("event persist failed",
			zap.String("event_id", ev.EventID),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if ev.EventID == "" {
		ev.EventID = uuid.New().String()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	select {
	case d.queue <- ev:
	default:
		// Queue full: drop rather than block a booking request.
		logging.Get().Warn("event queue full, dropping event",
			zap.String("type", ev.Type),
			zap.Uint("booking_id", ev.BookingID),
		)
	}
}

var _ Sink = (*Dispatcher)(nil)
