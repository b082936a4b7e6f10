package machina

import "context"

// Stream drives the machine from a channel of inputs on a dedicated
// goroutine, forwarding the committed Outcome of every step. The returned
// channel is closed when the inputs channel closes, when the context is
// canceled, or when the machine has no initial state.
//
// The streaming goroutine is the machine's single driver; do not call Next
// concurrently while a stream is running.
func (e *Engine) Stream(ctx context.Context, inputs <-chan any) <-chan Outcome {
	out := make(chan Outcome)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case input, ok := <-inputs:
				if !ok {
					return
				}

				res, err := e.Next(input)
				if err != nil {
					e.log.Debug("machina: stream stopped", "machine", e.name, "error", err)
					return
				}

				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
