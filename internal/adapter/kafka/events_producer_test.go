package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type stubClient struct {
	produced []*kgo.Record
	err      error
}

func (c *stubClient) ProduceSync(
	ctx context.Context, rs ...*kgo.Record,
) kgo.ProduceResults {
	c.produced = append(c.produced, rs...)
	var results kgo.ProduceResults
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r, Err: c.err})
	}
	return results
}

func (c *stubClient) Close() {}

type jsonEncoder struct{}

func (jsonEncoder) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func TestEventsProducer(t *testing.T) {

	t.Run("ProduceEvent", func(t *testing.T) {
		cl := &stubClient{}
		p := EventsProducer{
			producer: producer{opPrefix: "EventsProducer", cl: cl},
			encoder:  jsonEncoder{},
		}

		evt := domain.InteractionEvent{
			EventID:    "evt-1",
			Kind:       domain.EventCartAdd,
			ProductID:  7,
			Quantity:   2,
			OccurredAt: time.UnixMilli(1700000000000),
		}
		require.NoError(t, p.ProduceEvent(t.Context(), evt))

		require.Len(t, cl.produced, 1)
		assert.Equal(t, []byte("cart_add"), cl.produced[0].Key)

		var s schema.InteractionEventV1
		require.NoError(t, json.Unmarshal(cl.produced[0].Value, &s))
		assert.Equal(t, "evt-1", s.EventID)
		assert.Equal(t, int64(7), s.ProductID)
		assert.Equal(t, 2, s.Quantity)
		assert.Equal(t, int64(1700000000000), s.OccurredAt)
	})

	t.Run("ProduceError", func(t *testing.T) {
		cl := &stubClient{err: context.DeadlineExceeded}
		p := EventsProducer{
			producer: producer{opPrefix: "EventsProducer", cl: cl},
			encoder:  jsonEncoder{},
		}

		err := p.ProduceEvent(t.Context(), domain.InteractionEvent{
			Kind: domain.EventWishlistAdd,
		})
		assert.Error(t, err)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		p := EventsProducer{
			producer: producer{opPrefix: "EventsProducer", cl: &stubClient{}},
			encoder:  jsonEncoder{},
		}
		err := p.ProduceEvent(ctx, domain.InteractionEvent{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
