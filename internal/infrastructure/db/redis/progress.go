package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/ports"
)

const subscriberBuffer = 16

// ProgressBroker fans simulation events out through Redis pub/sub, one
// channel per simulation. Publishing is decoupled from subscribing so
// live updates work across server replicas.
type ProgressBroker struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewProgressBroker(client *redis.Client, log zerolog.Logger) *ProgressBroker {
	return &ProgressBroker{client: client, log: log}
}

func channelName(simulationID string) string {
	return "simulation:" + simulationID
}

// Publish sends one event to the simulation's channel.
func (b *ProgressBroker) Publish(ctx context.Context, event ports.SimulationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	if err := b.client.Publish(ctx, channelName(event.SimulationID), payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Subscribe returns a channel of events for one simulation. A slow
// consumer drops frames rather than blocking the broker; each frame is a
// full snapshot so drops are harmless. The cancel func releases the
// subscription and closes the channel.
func (b *ProgressBroker) Subscribe(ctx context.Context, simulationID string) (<-chan ports.SimulationEvent, func(), error) {
	sub := b.client.Subscribe(ctx, channelName(simulationID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan ports.SimulationEvent, subscriberBuffer)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var event ports.SimulationEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.log.Warn().Err(err).Str("simulation_id", simulationID).Msg("malformed simulation event")
				continue
			}
			select {
			case out <- event:
			default:
				b.log.Debug().Str("simulation_id", simulationID).Msg("subscriber lagging, frame dropped")
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return out, cancel, nil
}
