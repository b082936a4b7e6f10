package machina

import (
	"sync"

	. "github.com/enetx/g"
)

// SyncEngine is a thread-safe wrapper around an Engine.
// It protects all state-mutating and state-reading operations with a
// sync.Mutex, making it safe for use across multiple goroutines — including
// chaining Next calls from inside continuations.
// All methods on SyncEngine are the thread-safe counterparts to the methods
// on the base Engine.
type SyncEngine struct {
	engine *Engine
	mu     sync.Mutex
}

// Interface compliance check.
var _ Machine = (*SyncEngine)(nil)

// NewSync creates an engine wrapped for concurrent use.
func NewSync(cfg ...Config) *SyncEngine {
	return &SyncEngine{engine: New(cfg...)}
}

// Engine returns the wrapped engine. Configure hooks through it before
// driving the machine from multiple goroutines.
func (se *SyncEngine) Engine() *Engine {
	return se.engine
}

// AddState is the thread-safe version of Engine.AddState.
func (se *SyncEngine) AddState(s *State) error {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.AddState(s)
}

// AddStates is the thread-safe version of Engine.AddStates.
func (se *SyncEngine) AddStates(states ...*State) error {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.AddStates(states...)
}

// Next is the thread-safe version of Engine.Next.
// It atomically resolves and commits one step; a continuation chaining
// another Next serializes on the wrapper's lock.
func (se *SyncEngine) Next(input any, done ...Continuation) (Outcome, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.Next(input, done...)
}

// Reset is the thread-safe version of Engine.Reset.
func (se *SyncEngine) Reset() ResetInfo {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.Reset()
}

// CurrentStatus is the thread-safe version of Engine.CurrentStatus.
func (se *SyncEngine) CurrentStatus() Status {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.CurrentStatus()
}

// GetState is the thread-safe version of Engine.GetState.
func (se *SyncEngine) GetState(name String) Option[*State] {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.GetState(name)
}

// States is the thread-safe version of Engine.States.
func (se *SyncEngine) States() Slice[String] {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.States()
}

// ValidateGraph is the thread-safe version of Engine.ValidateGraph.
func (se *SyncEngine) ValidateGraph() error {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.ValidateGraph()
}

// ToDOT is the thread-safe version of Engine.ToDOT.
// It generates a DOT language representation of the graph for visualization.
func (se *SyncEngine) ToDOT() String {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the engine's status snapshot.
func (se *SyncEngine) MarshalJSON() ([]byte, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	return se.engine.MarshalJSON()
}
