package signals

type Observer[E any] func(E)

// Subscription detaches the observer it was returned for.
type Subscription interface {
	Dispose()
}

type Signal[E any] interface {
	Attach(observer Observer[E], observerID ...any) Subscription
	Detach(observer Observer[E], observerID ...any)
	Notify(event E)
}
