package cpu

import (
	"log/slog"

	"github.com/ezrec/minisys/internal/logging"
)

const (
	UNNAMED_PROCESS = "Unnamed Process"
	UNNAMED_THREAD  = "Unnamed Thread"
)

// Cpu hosts at most one process.
type Cpu struct {
	Logger *slog.Logger

	source  Source
	process *Process
}

// NewCpu creates a cpu whose threads fetch from source.
func NewCpu(source Source, logger *slog.Logger) *Cpu {
	return &Cpu{
		Logger: logging.OrDiscard(logger),
		source: source,
	}
}

// CreateProcess creates the cpu's process. If the process already exists
// it is returned unchanged, whatever the name. An empty name means
// UNNAMED_PROCESS.
func (cpu *Cpu) CreateProcess(name string) *Process {
	if cpu.process != nil {
		cpu.Logger.Warn("cpu: process already exists", "process", cpu.process.name)
		return cpu.process
	}

	if name == "" {
		name = UNNAMED_PROCESS
	}

	cpu.process = &Process{
		Logger: cpu.Logger,
		name:   name,
		source: cpu.source,
	}

	return cpu.process
}

// Process returns the cpu's process, or nil.
func (cpu *Cpu) Process() *Process {
	return cpu.process
}

// Process hosts at most one thread.
type Process struct {
	Logger *slog.Logger

	name   string
	source Source
	thread *Thread
}

// Name of the process.
func (p *Process) Name() string {
	return p.name
}

// CreateThread creates the process's thread. If the thread already exists
// it is returned unchanged. An empty name means UNNAMED_THREAD.
func (p *Process) CreateThread(name string) *Thread {
	if p.thread != nil {
		p.Logger.Warn("cpu: thread already exists", "process", p.name, "thread", p.thread.name)
		return p.thread
	}

	if name == "" {
		name = UNNAMED_THREAD
	}

	p.thread = NewThread(name, p.source, p.Logger)

	return p.thread
}

// Thread returns the process's thread, or nil.
func (p *Process) Thread() *Thread {
	return p.thread
}
