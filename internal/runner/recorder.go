package runner

import (
	"context"
	"sync"
)

// Response scripts the outcome of a command matched by a Recorder.
type Response struct {
	Output *Output
	Err    error
	// Hook runs before the response is returned, letting tests simulate
	// side effects such as a generator writing files.
	Hook func(cmd Command) error
}

// Recorder is a Runner that records every command and replays scripted
// responses. Commands without a scripted response succeed with empty output.
type Recorder struct {
	mu        sync.Mutex
	commands  []Command
	responses map[string]Response
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{responses: make(map[string]Response)}
}

// On scripts the response for the command whose String() equals line.
func (r *Recorder) On(line string, resp Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[line] = resp
	return r
}

// Commands returns a copy of the commands run so far.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Lines returns the recorded command lines.
func (r *Recorder) Lines() []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}

// Run records cmd and returns its scripted response.
func (r *Recorder) Run(ctx context.Context, cmd Command) (*Output, error) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	resp, ok := r.responses[cmd.String()]
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ok {
		return &Output{}, nil
	}
	if resp.Hook != nil {
		if err := resp.Hook(cmd); err != nil {
			return nil, err
		}
	}
	out := resp.Output
	if out == nil {
		out = &Output{}
	}
	return out, resp.Err
}
