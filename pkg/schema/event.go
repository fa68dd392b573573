package schema

import "github.com/hamba/avro/v2"

const InteractionEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "interaction_event",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "quantity", "type": "int"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// InteractionEventV1 is the wire shape of one interaction event.
// OccurredAt is unix milliseconds.
type InteractionEventV1 struct {
	EventID    string `avro:"event_id"`
	Kind       string `avro:"kind"`
	ProductID  int64  `avro:"product_id"`
	Quantity   int    `avro:"quantity"`
	OccurredAt int64  `avro:"occurred_at"`
}

func InteractionEventV1Avro() avro.Schema {
	return avro.MustParse(InteractionEventSchemaTextV1)
}
