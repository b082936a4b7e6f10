package machina

// Observer registration. Hooks fire synchronously inside Next and Reset, in
// registration order, before any continuation runs. A hook must not call back
// into the engine that invoked it.

// OnChange registers a hook observing every committed transition.
func (e *Engine) OnChange(h ChangeHook) *Engine {
	e.onChange.Push(h)
	return e
}

// OnReset registers a hook observing every reset, explicit or automatic.
func (e *Engine) OnReset(h ResetHook) *Engine {
	e.onReset.Push(h)
	return e
}

// OnValue registers a hook observing every value produced by an accept.
func (e *Engine) OnValue(h ValueHook) *Engine {
	e.onValue.Push(h)
	return e
}

// OnError registers a hook observing runtime errors: dead ends, unknown
// transition targets, and recovered callback panics. Dead ends are always
// followed, within the same Next call, by a reset notification.
func (e *Engine) OnError(h ErrorHook) *Engine {
	e.onError.Push(h)
	return e
}

func (e *Engine) fireChange(c Change) {
	for h := range e.onChange.Iter() {
		h(c)
	}
}

func (e *Engine) fireReset(info ResetInfo) {
	for h := range e.onReset.Iter() {
		h(info)
	}
}

func (e *Engine) fireValue(v any) {
	for h := range e.onValue.Iter() {
		h(v)
	}
}

func (e *Engine) fireError(err error) {
	e.log.Debug("machina: runtime error", "machine", e.name, "error", err)

	for h := range e.onError.Iter() {
		h(err)
	}
}
