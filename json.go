package machina

import (
	"encoding/json"

	"github.com/enetx/g"
)

// engineStatus is a serializable snapshot of the engine. It is a diagnostic
// view only; the engine does not persist or restore state across restarts.
type engineStatus struct {
	Machine g.String        `json:"machine,omitempty"`
	State   g.String        `json:"state"`
	History g.Slice[Record] `json:"history"`
}

// MarshalJSON implements the json.Marshaler interface with a diagnostic
// snapshot of the machine's name, current state, and history.
func (e *Engine) MarshalJSON() ([]byte, error) {
	st := e.CurrentStatus()

	return json.Marshal(engineStatus{
		Machine: e.name,
		State:   st.State,
		History: st.History,
	})
}

// MarshalJSON implements the json.Marshaler interface.
func (o Outcome) MarshalJSON() ([]byte, error) {
	type resetInfo struct {
		Prior   g.String        `json:"prior"`
		History g.Slice[Record] `json:"history"`
	}

	out := struct {
		Values  g.Slice[any]    `json:"values,omitempty"`
		Reset   *resetInfo      `json:"reset,omitempty"`
		Current g.String        `json:"current"`
		History g.Slice[Record] `json:"history"`
	}{
		Values:  o.Values,
		Current: o.Current,
		History: o.History,
	}

	if o.Reset.IsSome() {
		r := o.Reset.Some()
		out.Reset = &resetInfo{Prior: r.Prior, History: r.History}
	}

	return json.Marshal(out)
}
