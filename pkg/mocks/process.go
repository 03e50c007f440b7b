package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// ProcessResult is the scripted outcome of a mock process.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	StartErr error
}

// ProcessManager is a mock ports.ProcessManager that serves scripted results
// keyed by the canonical executable path.
type ProcessManager struct {
	requestLog

	mu       sync.RWMutex
	results     map[string]ProcessResult
	executables map[string]path.Path
	nextID      int
	FileName    path.Path

	CreateProcessFunc func(executable path.Path, arguments []string, workingDirectory path.Path, interceptInputOutput bool) ports.Process
}

// NewProcessManager creates a mock ProcessManager.
func NewProcessManager() *ProcessManager {
	return &ProcessManager{
		results:     make(map[string]ProcessResult),
		executables: make(map[string]path.Path),
		FileName:    path.MustLoad("/bin/pathkit"),
	}
}

// RegisterResult scripts the outcome for every process of executable.
func (m *ProcessManager) RegisterResult(executable path.Path, result ProcessResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[executable.String()] = result
}

// RegisterExecutable makes FindExecutable resolve name to executable.
func (m *ProcessManager) RegisterExecutable(name string, executable path.Path) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executables[name] = executable
}

func (m *ProcessManager) FindExecutable(name string) (path.Path, error) {
	m.record("FindExecutable: %s", name)
	m.mu.RLock()
	defer m.mu.RUnlock()
	executable, ok := m.executables[name]
	if !ok {
		return path.Path{}, fmt.Errorf("executable not found: %s", name)
	}
	return executable, nil
}

func (m *ProcessManager) CurrentProcessFileName() (path.Path, error) {
	m.record("GetCurrentProcessFileName")
	return m.FileName, nil
}

func (m *ProcessManager) CreateProcess(
	executable path.Path,
	arguments []string,
	workingDirectory path.Path,
	interceptInputOutput bool,
) ports.Process {
	m.record("CreateProcess: %s [%s] %s", executable, strings.Join(arguments, " "), workingDirectory)
	if m.CreateProcessFunc != nil {
		return m.CreateProcessFunc(executable, arguments, workingDirectory, interceptInputOutput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	result, ok := m.results[executable.String()]
	if !ok {
		result = ProcessResult{StartErr: fmt.Errorf("executable not registered: %s", executable)}
	}
	return &Process{manager: m, id: m.nextID, result: result}
}

// Process is a mock ports.Process.
type Process struct {
	manager *ProcessManager
	id      int
	result  ProcessResult
	ctx     context.Context
	started bool
	exited  bool
}

func (p *Process) Start(ctx context.Context) error {
	p.manager.record("ProcessStart: %d", p.id)
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.result.StartErr != nil {
		return p.result.StartErr
	}
	p.ctx = ctx
	p.started = true
	return nil
}

func (p *Process) Wait() error {
	p.manager.record("WaitForExit: %d", p.id)
	if !p.started {
		return fmt.Errorf("process %d not started", p.id)
	}
	if err := p.ctx.Err(); err != nil {
		return err
	}
	p.exited = true
	return nil
}

func (p *Process) ExitCode() int {
	p.manager.record("GetExitCode: %d", p.id)
	if !p.exited {
		return -1
	}
	return p.result.ExitCode
}

func (p *Process) Stdout() string {
	p.manager.record("GetStandardOutput: %d", p.id)
	return p.result.Stdout
}

func (p *Process) Stderr() string {
	p.manager.record("GetStandardError: %d", p.id)
	return p.result.Stderr
}

var (
	_ ports.ProcessManager = (*ProcessManager)(nil)
	_ ports.Process        = (*Process)(nil)
)
