package domain

// Step is one unit of pipeline work. The variant is closed: a step is
// either a subprocess invocation (ShellStep) or an in-process action
// (ActionStep). Nothing else implements it.
type Step interface {
	// Describe returns a short human-readable label for status output.
	Describe() string

	isStep()
}

// ShellStep describes a subprocess invocation. Success is exit code zero;
// stdout and stderr are captured in full and attached to failure reports.
type ShellStep struct {
	// Command is the executable to run.
	Command string

	// Args is the argument list, not including the command itself.
	Args []string

	// Dir is the working directory. Empty means the process inherits the
	// caller's working directory.
	Dir string

	// Info is the message surfaced when the step starts.
	Info string

	// ErrHint is an optional step-specific message attached to failures.
	ErrHint string
}

// Describe returns the step's informational message, falling back to the command.
func (s *ShellStep) Describe() string {
	if s.Info != "" {
		return s.Info
	}
	return s.Command
}

func (*ShellStep) isStep() {}

// ActionStep is a cheap in-process action. It runs inline in both execution
// modes; a panic inside Do is caught by the runner and treated as a step
// failure rather than propagated.
type ActionStep struct {
	// Name labels the action for status output.
	Name string

	// Do performs the action. A nil return means success.
	Do func() error
}

// Describe returns the action's name.
func (s *ActionStep) Describe() string { return s.Name }

func (*ActionStep) isStep() {}

// Pipeline is the ordered step sequence built for one target in one run.
// Pipelines are independent of each other; the progress Tracker is the only
// state they share.
type Pipeline []Step

// StepOutput holds the output captured from one spawned subprocess. Each
// spawn owns its own buffers so concurrent pipelines never cross-contaminate.
type StepOutput struct {
	Stdout string
	Stderr string
}
