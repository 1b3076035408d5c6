package engine

// Event is a multi-cast notification with no payload. Listeners are
// invoked synchronously in registration order. A nil listener is ignored,
// and invoking an event with no listeners is a no-op, so optional
// collaborators can simply not subscribe.
type Event struct {
	listeners []func()
}

func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a multi-cast notification carrying one payload value.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
