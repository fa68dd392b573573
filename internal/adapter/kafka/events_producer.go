package kafka

import (
	"context"
	"fmt"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.EventsProducer = (*EventsProducer)(nil)

// EventsProducer publishes interaction events to the analytics topic.
type EventsProducer struct {
	producer
	encoder Encoder
}

func NewEventsProducer(opts ...ProducerOpt) (EventsProducer, error) {
	const op = "NewEventsProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return EventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return EventsProducer{
		producer: producer{opPrefix: "EventsProducer", cl: options.cl},
		encoder:  options.encoder,
	}, nil
}

func (p EventsProducer) Close() {
	p.close()
}

// ProduceEvent encodes and sends one interaction event, keyed by the
// event kind.
func (p EventsProducer) ProduceEvent(
	ctx context.Context, evt domain.InteractionEvent,
) error {
	const op = "EventsProducer.ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return opErr(err, op)
	}

	if err := p.produce(ctx, r); err != nil {
		return opErr(err, op)
	}

	return nil
}

func (p EventsProducer) createRecord(
	evt domain.InteractionEvent,
) (*kgo.Record, error) {
	const op = "EventsProducer.createRecord"

	s := eventToSchemaV1(evt)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &kgo.Record{Key: []byte(s.Kind), Value: v}, nil
}
