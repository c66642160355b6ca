package async

// Store lifecycle events, published whenever the database content is replaced.
const (
	StoreEventsTopic BrokerTopicName = "store_events"

	DatabaseCreatedEvent = "database_created"
	DatabaseResetEvent   = "database_reset"
)
