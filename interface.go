package machina

import . "github.com/enetx/g"

type Machine interface {
	AddState(*State) error
	AddStates(...*State) error
	Next(any, ...Continuation) (Outcome, error)
	Reset() ResetInfo
	CurrentStatus() Status
	GetState(String) Option[*State]
	States() Slice[String]
	ValidateGraph() error
	ToDOT() String
	MarshalJSON() ([]byte, error)
}
