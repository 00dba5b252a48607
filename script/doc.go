// Package script runs starlark scenario files against an emulator.
//
// A scenario preloads the devices, builds tasks and queues them:
//
//	ethernet_write([1, 2, 3, 4, 5, 6, 7, 8, 9])
//	rd = read_card(ethernet_card, 9)
//	enqueue(composite(rd, write_memory(rd, 0), write_card(token_ring_card, rd)))
//
// The emulator defines (RAM_SIZE, CPU_COUNT, ...) are predeclared as ints.
// A write task takes its bytes either from an earlier task, sharing that
// task's data, or from a list of ints.
package script
