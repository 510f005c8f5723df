package port

// NetworkProbe reports whether network-dependent strategies are worth
// attempting. Polled once per pipeline invocation.
type NetworkProbe interface {
	IsAvailable() bool
}
