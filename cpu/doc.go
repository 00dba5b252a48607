// Package cpu implements the execution units of the minisys computer.
//
// A Cpu hosts one Process, and a Process hosts one Thread. Each call to
// Thread.Run is one cycle of the Idle → Fetching → Executing → Notifying
// state machine: the thread fetches a single task from its Source, executes
// it, and tells every attached Observer that the task has finished. A
// Composite task counts as one task, its children are not fetched
// separately.
package cpu
