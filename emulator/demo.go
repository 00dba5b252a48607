package emulator

import (
	"github.com/ezrec/minisys/device"
	"github.com/ezrec/minisys/task"
)

// DemoPayload is written to the Ethernet before the demo runs.
var DemoPayload = []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}

// Demo is the reference scenario.
type Demo struct {
	Composite  *task.Composite
	ReadCard   *task.ReadCard
	WriteRam   *task.WriteMemory
	WriteCard  *task.WriteCard
	ReadMemory *task.ReadMemory
}

// LoadDemo preloads the Ethernet with DemoPayload and queues:
//
//   - a composite that moves the payload from the Ethernet into memory at
//     address 0 and on to the TokenRing,
//   - a read of the payload back from memory.
func (emu *Emulator) LoadDemo() (demo *Demo, err error) {
	err = emu.Ethernet.Write(device.Octets(DemoPayload...))
	if err != nil {
		return
	}

	size := len(DemoPayload)

	demo = &Demo{}
	demo.ReadCard = task.NewReadCard(emu.EthernetCard, size)
	demo.WriteRam = task.NewWriteMemory(emu.Ram, demo.ReadCard.Data, 0)
	demo.WriteCard = task.NewWriteCard(emu.TokenRingCard, demo.ReadCard.Data)
	demo.ReadMemory = task.NewReadMemory(emu.Ram, 0, size)

	demo.Composite = task.NewComposite(demo.ReadCard, demo.WriteRam, demo.WriteCard)

	emu.Enqueue(demo.Composite)
	emu.Enqueue(demo.ReadMemory)

	return
}
