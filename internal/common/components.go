package common

const (
	ComponentRPCClient        = "rpc-client"
	ComponentLogCache         = "log-cache"
	ComponentCacheStore       = "cache-store"
	ComponentCallCache        = "call-cache"
	ComponentMaintenance      = "maintenance"
	ComponentNetworkDirectory = "network-directory"
	ComponentAPI              = "api"
	ComponentMetrics          = "metrics"
)

var AllComponents = map[string]struct{}{
	ComponentRPCClient:        {},
	ComponentLogCache:         {},
	ComponentCacheStore:       {},
	ComponentCallCache:        {},
	ComponentMaintenance:      {},
	ComponentNetworkDirectory: {},
	ComponentAPI:              {},
	ComponentMetrics:          {},
}
