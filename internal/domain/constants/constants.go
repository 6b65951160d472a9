// Package constants holds identifiers shared by configuration, infra and delivery.
package constants

// Environments
const (
	EnvLocal = "local"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Worker push endpoint
const (
	WorkerPushPath     = "/pubsub/push"
	WorkerSubscription = "projects/local/subscriptions/market-events-sub"
)

// Cache collections that are not document collections
const (
	QueryActiveAdvertisements = "activeAdvertisements"
	QueryUserStore            = "userStore"
	QueryPreferredLocation    = "preferredLocation"
)
