// Package osprocess provides a ports.ProcessManager backed by os/exec.
package osprocess

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// Manager implements ports.ProcessManager using os/exec.
type Manager struct {
	logger ports.Logger
}

// New creates a new Manager.
func New(logger ports.Logger) *Manager {
	return &Manager{logger: logger.WithComponent("process")}
}

// CurrentProcessFileName returns the executable of the running process.
func (m *Manager) CurrentProcessFileName() (path.Path, error) {
	exe, err := os.Executable()
	if err != nil {
		return path.Path{}, errors.Wrap(err, "current process file name")
	}
	return path.FromNative(exe), nil
}

// FindExecutable searches the PATH for name.
func (m *Manager) FindExecutable(name string) (path.Path, error) {
	found, err := exec.LookPath(name)
	if err != nil {
		return path.Path{}, errors.Wrapf(err, "find executable %s", name)
	}
	resolved := path.FromNative(found)
	m.logger.Debug("Resolved executable %s", resolved)
	return resolved, nil
}

// CreateProcess prepares a process. Nothing runs until Start.
func (m *Manager) CreateProcess(
	executable path.Path,
	arguments []string,
	workingDirectory path.Path,
	interceptInputOutput bool,
) ports.Process {
	return &Process{
		executable:           executable,
		arguments:            append([]string(nil), arguments...),
		workingDirectory:     workingDirectory,
		interceptInputOutput: interceptInputOutput,
		logger:               m.logger,
	}
}

// Process implements ports.Process.
type Process struct {
	executable           path.Path
	arguments            []string
	workingDirectory     path.Path
	interceptInputOutput bool
	logger               ports.Logger

	ctx      context.Context
	cmd      *exec.Cmd
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode int
}

// Start launches the process. Cancelling ctx kills it.
func (p *Process) Start(ctx context.Context) error {
	if p.cmd != nil {
		return errors.Errorf("process %s already started", p.executable)
	}

	p.ctx = ctx
	p.cmd = exec.CommandContext(ctx, p.executable.OSString(), p.arguments...)
	p.cmd.Dir = p.workingDirectory.OSString()
	if p.interceptInputOutput {
		p.cmd.Stdout = &p.stdout
		p.cmd.Stderr = &p.stderr
	} else {
		p.cmd.Stdin = os.Stdin
		p.cmd.Stdout = os.Stdout
		p.cmd.Stderr = os.Stderr
	}

	p.logger.Debug("Starting process %s", p.executable)
	if err := p.cmd.Start(); err != nil {
		p.logger.Error("Failed to start process %s: %s", p.executable, err)
		return errors.Wrapf(err, "start %s", p.executable)
	}
	return nil
}

// Wait blocks until the process exits.
func (p *Process) Wait() error {
	if p.cmd == nil {
		return errors.Errorf("process %s not started", p.executable)
	}

	err := p.cmd.Wait()
	if ctxErr := p.ctx.Err(); ctxErr != nil {
		p.exitCode = -1
		p.logger.Debug("Process %s cancelled", p.executable)
		return errors.Wrapf(ctxErr, "wait %s", p.executable)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		p.exitCode = 0
	case errors.As(err, &exitErr):
		p.exitCode = exitErr.ExitCode()
	default:
		return errors.Wrapf(err, "wait %s", p.executable)
	}

	p.logger.Debug("Process %s exited with code %d", p.executable, p.exitCode)
	return nil
}

// ExitCode returns the exit code after Wait.
func (p *Process) ExitCode() int {
	return p.exitCode
}

// Stdout returns the captured standard output.
func (p *Process) Stdout() string {
	return p.stdout.String()
}

// Stderr returns the captured standard error.
func (p *Process) Stderr() string {
	return p.stderr.String()
}

var (
	_ ports.ProcessManager = (*Manager)(nil)
	_ ports.Process        = (*Process)(nil)
)
