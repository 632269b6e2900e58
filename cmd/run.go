package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/easylang/easyc/internal/compiler"
	"github.com/easylang/easyc/internal/project"
	"github.com/spf13/cobra"
)

var pythonBin string

// run: compile, then hand the generated program to the Python interpreter
var RunCmd = &cobra.Command{
	Use:   "run [source.easy]",
	Short: "Compile an Easy source file and execute it with Python",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	RunCmd.Flags().StringVar(&pythonBin, "python", "", "Python interpreter to execute with (default from easy.yaml, else python3)")
}

func runRun(cmd *cobra.Command, args []string) error {
	src, out, profile, err := resolveBuildInputs(args)
	if err != nil {
		return err
	}

	python := pythonBin
	if python == "" {
		if m, merr := project.Load("."); merr == nil {
			python = m.Python
		} else {
			python = "python3"
		}
	}

	outFile, err := compiler.CompileAndWrite(src, out, profile)
	if err != nil {
		return err
	}

	fmt.Printf("↪ running %s with %s ...\n", outFile, python)

	proc := exec.Command(python, outFile)
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr
	return proc.Run()
}
