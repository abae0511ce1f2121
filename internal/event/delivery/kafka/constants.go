package kafka

// Topics and consumer groups for interaction event ingest.
const (
	TopicStorefrontInteractions    = "storefront.interactions"
	ConsumerGroupInteractionEvents = "image-insights-event-recorder"
)
