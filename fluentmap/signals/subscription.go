package signals

type subscription func()

func (s subscription) Dispose() {
	s()
}

// Subscriptions disposes all of its members at once.
type Subscriptions []Subscription

func (c Subscriptions) Dispose() {
	for _, s := range c {
		s.Dispose()
	}
}
