package cmdr

import "sync"

// Recorder passes commands through to another Commander and remembers every
// successful response, so a real interpreter can later be replayed with
// StaticCommand.
type Recorder struct {
	next Commander

	mu        sync.Mutex
	responses map[string]string
}

// NewRecorder wraps next.
func NewRecorder(next Commander) *Recorder {
	return &Recorder{
		next:      next,
		responses: make(map[string]string),
	}
}

// Command records a single-argument command
func (r *Recorder) Command(arg string) (string, error) {
	return r.Commands(arg)
}

// Commands records an argument-list command
func (r *Recorder) Commands(args ...string) (string, error) {
	resp, err := r.next.Commands(args...)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.responses[Key(args...)] = resp
	r.mu.Unlock()

	return resp, nil
}

// Responses returns a copy of everything recorded so far.
func (r *Recorder) Responses() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]string, len(r.responses))
	for k, v := range r.responses {
		out[k] = v
	}
	return out
}
