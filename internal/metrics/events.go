package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/roomcrawl/internal/event"
	"github.com/osse101/roomcrawl/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.FightCompleted:
		p, err := event.DecodePayload[event.FightCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		outcome := OutcomeLost
		if p.HeroWon {
			outcome = OutcomeWon
		}
		FightsTotal.WithLabelValues(string(p.EnemyKind), outcome).Inc()
		FightExchanges.Observe(float64(p.Exchanges))
		if p.DamageTaken > 0 {
			DamageTaken.Add(p.DamageTaken)
		}

	case event.EnemyDefeated:
		p, err := event.DecodePayload[event.EnemyDefeatedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		EnemiesDefeated.WithLabelValues(string(p.EnemyKind)).Inc()

	case event.HeroDefeated:
		p, err := event.DecodePayload[event.HeroDefeatedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		HeroDeaths.WithLabelValues(string(p.KilledBy)).Inc()

	case event.ItemEquipped:
		p, err := event.DecodePayload[event.ItemPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsEquipped.WithLabelValues(string(p.Slot)).Inc()

	case event.ItemUsed:
		p, err := event.DecodePayload[event.ItemPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsUsed.WithLabelValues(p.ItemName).Inc()
		if p.Healed > 0 {
			HealingApplied.Add(p.Healed)
		}

	case event.RoomEntered:
		p, err := event.DecodePayload[event.RoomEnteredPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		RoomsEntered.WithLabelValues(strconv.FormatBool(p.Generated)).Inc()
	}
	return nil
}

// RecordAutoplayRun counts one finished automated run
func RecordAutoplayRun(defeated bool) {
	outcome := OutcomeSurvived
	if defeated {
		outcome = OutcomeDefeated
	}
	AutoplayRuns.WithLabelValues(outcome).Inc()
}
