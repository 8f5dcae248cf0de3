package extend

import "github.com/katalvlaran/swarmgrid/swarm"

// Warning is a diagnostic emitted when an agent cannot be routed to a
// destination, or a push along its path is blocked, naming the agent and
// what failed.
type Warning struct {
	Agent  swarm.AgentID
	Detail string
}

// Options configures an Extend call.
type Options struct {
	recordHistory bool
	onWarning     func(Warning)
}

// Option configures Extend behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns history recording enabled and a no-op warning hook.
func DefaultOptions() Options {
	return Options{
		recordHistory: true,
		onWarning:     func(Warning) {},
	}
}

// WithHistory toggles whether Extend's returned Trajectory carries every
// intermediate Configuration or is left empty.
func WithHistory(enabled bool) Option {
	return func(o *Options) { o.recordHistory = enabled }
}

// WithOnWarning registers a callback invoked for every Warning, in
// addition to it being returned in Extend's result slice.
func WithOnWarning(fn func(Warning)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onWarning = fn
		}
	}
}
