package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/minisys/emulator"
	"github.com/ezrec/minisys/internal/logging"
	"github.com/ezrec/minisys/script"
)

type options struct {
	config  string
	verbose bool
	logJSON string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "minisys",
		Short: "Simulated computer with a task pipeline over memory and network cards.",
		Long: `minisys models a small computer: a memory, an Ethernet card and a TokenRing ` +
			`card, and CPUs whose threads run queued tasks against them. Every finished ` +
			`task is recorded in the system event log.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "YAML machine configuration")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringVar(&opts.logJSON, "log-json", "", "Also write a JSON debug log to this file")

	root.AddCommand(
		newDemoCommand(opts),
		newRunCommand(opts),
		newDefinesCommand(opts),
	)

	return root
}

// newEmulator builds the emulator and its logger from the global flags.
func (opts *options) newEmulator(cmd *cobra.Command) (emu *emulator.Emulator, err error) {
	cfg, err := emulator.LoadConfig(opts.config)
	if err != nil {
		return
	}

	logOpts := logging.Options{
		Verbose: opts.verbose,
		Output:  cmd.ErrOrStderr(),
	}

	if len(opts.logJSON) != 0 {
		var file *os.File
		file, err = os.Create(opts.logJSON)
		if err != nil {
			return
		}
		atexit.Register(func() { file.Close() })
		logOpts.JSON = file
	}

	emu, err = emulator.NewEmulator(cfg, logging.New(logOpts))

	return
}

func printReport(cmd *cobra.Command, emu *emulator.Emulator, initial string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Initial state of the system:")
	fmt.Fprintln(out, initial)
	fmt.Fprintln(out)
	fmt.Fprintln(out, emu.Log)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Final state of the system:")
	fmt.Fprintln(out, emu)
}

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference scenario",
		Long: `Writes 1..9 to the Ethernet, then queues a composite task that copies it ` +
			`to memory and to the TokenRing, followed by a read of the memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu, err := opts.newEmulator(cmd)
			if err != nil {
				return
			}

			_, err = emu.LoadDemo()
			if err != nil {
				return
			}

			initial := emu.String()
			emu.Run()
			printReport(cmd, emu, initial)

			return
		},
	}
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.star>",
		Short: "Run a starlark scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu, err := opts.newEmulator(cmd)
			if err != nil {
				return
			}

			initial := emu.String()

			runner := script.NewRunner(emu)
			runner.Print = func(msg string) {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}

			_, err = runner.Exec(args[0], nil)
			if err != nil {
				return
			}

			emu.Run()
			printReport(cmd, emu, initial)

			return
		},
	}
}

func newDefinesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "defines",
		Short: "List the machine defines available to scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu, err := opts.newEmulator(cmd)
			if err != nil {
				return
			}

			defines := maps.Collect(emu.Defines())
			for _, key := range slices.Sorted(maps.Keys(defines)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%v=%v\n", key, defines[key])
			}

			return
		},
	}
}
