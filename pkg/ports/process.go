package ports

import (
	"context"

	"github.com/user/pathkit/pkg/path"
)

// ProcessManager creates child processes.
type ProcessManager interface {
	// CurrentProcessFileName returns the executable of the running process.
	CurrentProcessFileName() (path.Path, error)

	// FindExecutable searches the PATH for a bare command name.
	FindExecutable(name string) (path.Path, error)

	// CreateProcess prepares a process for executable. The executable is used
	// as given; PATH is only searched through FindExecutable. When
	// interceptInputOutput is set the standard output and error streams are
	// captured instead of inherited.
	CreateProcess(
		executable path.Path,
		arguments []string,
		workingDirectory path.Path,
		interceptInputOutput bool,
	) Process
}

// Process is a single child process.
type Process interface {
	// Start launches the process. Cancelling ctx kills it.
	Start(ctx context.Context) error

	// Wait blocks until the process exits. A non-zero exit code is reported
	// through ExitCode, not as an error. If the context given to Start was
	// cancelled, Wait returns its error.
	Wait() error

	// ExitCode returns the exit code after Wait.
	ExitCode() int

	// Stdout returns the captured standard output.
	Stdout() string

	// Stderr returns the captured standard error.
	Stderr() string
}
