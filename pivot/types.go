package pivot

import "github.com/katalvlaran/swarmgrid/swarm"

// Warning is a diagnostic emitted when an agent cannot be routed to the
// pivot along some edge of its path, naming the agent and what failed.
type Warning struct {
	Agent  swarm.AgentID
	Detail string
}

// Options configures a Visit call.
type Options struct {
	recordHistory bool
	onWarning     func(Warning)
}

// Option configures Visit behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns history recording enabled and a no-op warning hook.
func DefaultOptions() Options {
	return Options{
		recordHistory: true,
		onWarning:     func(Warning) {},
	}
}

// WithHistory toggles whether Visit's returned Trajectory carries every
// intermediate Configuration or is left empty.
func WithHistory(enabled bool) Option {
	return func(o *Options) { o.recordHistory = enabled }
}

// WithOnWarning registers a callback invoked for every Warning, in
// addition to it being returned in Visit's result slice.
func WithOnWarning(fn func(Warning)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onWarning = fn
		}
	}
}
