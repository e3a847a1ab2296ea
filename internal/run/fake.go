package run

import (
	"context"
	"strings"
)

// Call records one command invocation made through a Fake.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a single command line.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Fake is a scripted Runner for tests. Responses are matched first on the
// full command line, then on the command name alone; anything unmatched
// succeeds with empty output.
type Fake struct {
	// Responses maps a command line ("hyprctl hyprpaper listloaded") or a
	// bare command name ("hyprctl") to the result to return.
	Responses map[string]*Result

	// Unavailable lists command names Available reports as missing.
	Unavailable map[string]bool

	// Calls records every invocation in order.
	Calls []Call
}

// Run records the invocation and returns the scripted result.
func (f *Fake) Run(_ context.Context, name string, args []string, _ Options) *Result {
	call := Call{Name: name, Args: args}
	f.Calls = append(f.Calls, call)

	if r, ok := f.Responses[call.String()]; ok {
		return f.withIdentity(r, call)
	}
	if r, ok := f.Responses[name]; ok {
		return f.withIdentity(r, call)
	}
	return &Result{Command: name, Args: args, ExitCode: 0}
}

// Available consults the Unavailable set.
func (f *Fake) Available(name string) bool {
	return !f.Unavailable[name]
}

// CommandLines returns every recorded call as a command line string.
func (f *Fake) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}

func (f *Fake) withIdentity(r *Result, call Call) *Result {
	out := *r
	out.Command = call.Name
	out.Args = call.Args
	return &out
}
