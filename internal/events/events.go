package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	EntityBooking     = "booking"
	EntityReservation = "reservation"
	EntityRoom        = "room"
)

// LifecycleEvent is emitted on the lifecycle topic whenever a booking,
// reservation or room changes state. Downstream consumers (reporting,
// housekeeping boards) replay these instead of polling the database.
type LifecycleEvent struct {
	Entity     string    `json:"entity"`
	ID         string    `json:"id"`
	RoomNumber string    `json:"room_number,omitempty"`
	GuestName  string    `json:"guest_name,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishLifecycle(ctx context.Context, event LifecycleEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// PublishLifecycle is best effort. A lost event never fails the state
// transition that produced it.
func (p *publisherImpl) PublishLifecycle(ctx context.Context, event LifecycleEvent) {
	if !p.cfg.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishLifecycle")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.entity": event.Entity,
		"event.id":     event.ID,
		"event.status": event.Status,
	})

	message := kafka.Message{
		Key:   event.Entity + ":" + event.ID,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.LifecycleTopic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("entity", event.Entity).Str("id", event.ID).Msg("failed to publish lifecycle event")
	}
}
