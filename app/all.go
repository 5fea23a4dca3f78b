package app

import (
	"runtime"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const NUM_CPUS_FLAG = "cpus"

var (
	CPUs int
	// cpusCapped holds the CPU count -cpus was capped to, logged once the
	// command logger exists
	cpusCapped int
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		TrainCmd(),
		GenCmd(),
		ExpandCmd(),
		EvalCmd(),
	}
}

// AllCommands returns the root command; every subcommand takes -cpus.
func AllCommands(name string) *commander.Command {
	cmd := &commander.Command{
		UsageLine:   name,
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet("tgen", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.IntVar(&CPUs, NUM_CPUS_FLAG, 0, "Max CPUS to use (runtime.GOMAXPROCS); 0 = all")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	maxCPUs := runtime.NumCPU()
	cpusCapped = 0
	if CPUs > maxCPUs {
		cpusCapped = maxCPUs
		CPUs = 0
	}
	if CPUs == 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	return func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}
}
