package event

// Bus dispatches the events of a single game. A listener may implement any
// subset of the listener interfaces declared in this package.
type Bus struct {
	listeners []interface{}
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) AddListener(listener interface{}) {
	b.listeners = append(b.listeners, listener)
}

func (b *Bus) each(notify func(listener interface{})) {
	if b == nil {
		return
	}
	for _, listener := range b.listeners {
		notify(listener)
	}
}
