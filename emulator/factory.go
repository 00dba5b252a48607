package emulator

import (
	"log/slog"

	"github.com/ezrec/minisys/cpu"
	"github.com/ezrec/minisys/device"
	"github.com/ezrec/minisys/internal/logging"
)

// Factory builds the parts of a machine.
type Factory interface {
	CreateRam() *device.Ram
	CreateEthernet() *device.Ethernet
	CreateTokenRing() *device.TokenRing
	CreateCpu() *cpu.Cpu
}

// ConfigFactory builds parts sized by a Config. Its cpus fetch from Source.
type ConfigFactory struct {
	Config Config
	Source cpu.Source
	Logger *slog.Logger
}

var _ Factory = (*ConfigFactory)(nil)

// NewConfigFactory creates a factory for cfg.
func NewConfigFactory(cfg Config, source cpu.Source, logger *slog.Logger) *ConfigFactory {
	return &ConfigFactory{
		Config: cfg,
		Source: source,
		Logger: logging.OrDiscard(logger),
	}
}

func (cf *ConfigFactory) CreateRam() *device.Ram {
	return device.NewRam(cf.Config.RamSize)
}

func (cf *ConfigFactory) CreateEthernet() *device.Ethernet {
	return device.NewEthernet(cf.Config.EthernetSize)
}

func (cf *ConfigFactory) CreateTokenRing() *device.TokenRing {
	return device.NewTokenRing(cf.Config.TokenRingSize)
}

func (cf *ConfigFactory) CreateCpu() *cpu.Cpu {
	return cpu.NewCpu(cf.Source, cf.Logger)
}
