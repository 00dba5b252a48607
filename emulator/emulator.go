// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"strings"

	"github.com/ezrec/minisys/card"
	"github.com/ezrec/minisys/cpu"
	"github.com/ezrec/minisys/device"
	"github.com/ezrec/minisys/eventlog"
	"github.com/ezrec/minisys/internal"
	"github.com/ezrec/minisys/internal/logging"
	"github.com/ezrec/minisys/task"
)

// Emulator state. Devices + cards + CPUs, sharing one task queue and one
// event log.
type Emulator struct {
	Logger  *slog.Logger
	Config  Config
	Factory Factory

	Queue *task.Queue   // Tasks waiting for a thread.
	Log   *eventlog.Log // Completion events of every thread.

	Ram       *device.Ram
	Ethernet  *device.Ethernet
	TokenRing *device.TokenRing

	EthernetCard  *card.EthernetCard
	TokenRingCard *card.TokenRingCard

	Cpus    []*cpu.Cpu
	Threads []*cpu.Thread // One per cpu, in cpu order.
}

// NewEmulator creates an emulator sized by cfg. Each cpu gets a process
// "Process <n>" running a thread "Thread <n>", attached to the event log.
func NewEmulator(cfg Config, logger *slog.Logger) (emu *Emulator, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	logger = logging.OrDiscard(logger)
	queue := task.NewQueue()

	emu = &Emulator{
		Logger:  logger,
		Config:  cfg,
		Factory: NewConfigFactory(cfg, queue, logger),
		Queue:   queue,
		Log:     eventlog.NewLog(logger),
	}

	emu.Ram = emu.Factory.CreateRam()
	emu.Ethernet = emu.Factory.CreateEthernet()
	emu.TokenRing = emu.Factory.CreateTokenRing()

	emu.EthernetCard = card.NewEthernetCard(emu.Ethernet)
	emu.TokenRingCard = card.NewTokenRingCard(emu.TokenRing)

	for n := range cfg.Cpus {
		c := emu.Factory.CreateCpu()
		process := c.CreateProcess(fmt.Sprintf("Process %d", n+1))
		thread := process.CreateThread(fmt.Sprintf("Thread %d", n+1))
		thread.Attach(emu.Log)

		emu.Cpus = append(emu.Cpus, c)
		emu.Threads = append(emu.Threads, thread)
	}

	logger.Debug("emulator: created",
		"ram", cfg.RamSize,
		"ethernet", cfg.EthernetSize,
		"token_ring", cfg.TokenRingSize,
		"cpus", cfg.Cpus)

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Seq2Concat(
		maps.All(map[string]string{
			"CPU_COUNT": fmt.Sprintf("%v", len(emu.Cpus)),
		}),
		emu.Ram.Defines(),
		emu.Ethernet.Defines(),
		emu.TokenRing.Defines(),
	)
}

// Devices returns the simulated devices, memory first.
func (emu *Emulator) Devices() []device.Device {
	return []device.Device{emu.Ram, emu.Ethernet, emu.TokenRing}
}

// Enqueue schedules a task.
func (emu *Emulator) Enqueue(t task.Task) {
	emu.Queue.Enqueue(t)
}

// Tick runs every thread for one cycle, in cpu order. done is set once the
// queue is empty.
func (emu *Emulator) Tick() (done bool) {
	for _, thread := range emu.Threads {
		if thread.Run() {
			emu.Logger.Debug("emulator: tick", "thread", thread.Name(), "pending", emu.Queue.Len())
		}
	}

	done = emu.Queue.Len() == 0

	return
}

// Run ticks until the queue is drained, and returns the number of ticks.
func (emu *Emulator) Run() (ticks int) {
	for emu.Queue.Len() != 0 {
		emu.Tick()
		ticks++
	}

	return
}

// String renders every device, one per line.
func (emu *Emulator) String() string {
	lines := make([]string, 0, 3)
	for _, dev := range emu.Devices() {
		lines = append(lines, dev.String())
	}
	return strings.Join(lines, "\n")
}
