/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package source

// CallEvent is handed to before-call observers. Handlers run synchronously
// and may rewrite Method and Args before the call is dispatched.
type CallEvent struct {
	Op     Operation
	Method string
	Args   any
}

// Notifier fans a call event out to subscribed handlers in subscription
// order. It is the only interception point for argument mutation.
type Notifier struct {
	handlers []func(*CallEvent)
}

// Subscribe adds a handler.
func (n *Notifier) Subscribe(fn func(*CallEvent)) {
	n.handlers = append(n.handlers, fn)
}

func (n *Notifier) notify(ev *CallEvent) {
	for _, fn := range n.handlers {
		fn(ev)
	}
}
