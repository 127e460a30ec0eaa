// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — диспетчер событий. Не потокобезопасен: вызывается только из
// цикла симуляции.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll receives every event regardless of type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = remove(d.listeners[eventType], listener)
}

func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.any = remove(d.any, listener)
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.any {
		listener.OnEvent(event)
	}
}

func remove(listeners []Listener, target Listener) []Listener {
	for i, l := range listeners {
		if l == target {
			return append(listeners[:i], listeners[i+1:]...)
		}
	}
	return listeners
}
