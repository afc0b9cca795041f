// Command dmgcore runs or steps through a Game Boy ROM image on the
// standalone LR35902 core.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"dmgcore/cartridge"
	"dmgcore/cpu"
	"dmgcore/mem"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dmgcore",
		Short: "Sharp LR35902 core: run or step a ROM image",
	}

	var maxSteps int

	runCmd := &cobra.Command{
		Use:   "run <rom-path>",
		Short: "Run a ROM image until it executes STOP or hits an undefined opcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCpu(args[0])
			if err != nil {
				return err
			}
			return runLoop(c, maxSteps)
		},
	}
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")

	debugCmd := &cobra.Command{
		Use:   "debug <rom-path>",
		Short: "Load a ROM image and step it in an interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCpu(args[0])
			if err != nil {
				return err
			}
			return c.Debug()
		},
	}

	rootCmd.AddCommand(runCmd, debugCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadCpu(romPath string) (*cpu.Cpu, error) {
	cart, err := cartridge.Load(romPath)
	if err != nil {
		return nil, fmt.Errorf("dmgcore: %w", err)
	}
	bus := mem.New(cart)
	return cpu.New(bus), nil
}

func runLoop(c *cpu.Cpu, maxSteps int) error {
	var decodeErr *cpu.DecodeError
	for steps := 0; maxSteps == 0 || steps < maxSteps; steps++ {
		if _, err := c.Tick(); err != nil {
			if errors.As(err, &decodeErr) {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return err
		}
		if c.Stopped {
			break
		}
	}
	return nil
}
