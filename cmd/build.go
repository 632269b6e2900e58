package cmd

import (
	"fmt"

	"github.com/easylang/easyc/internal/compiler"
	"github.com/easylang/easyc/internal/project"
	"github.com/spf13/cobra"
)

// build: compile .easy -> .py
var BuildCmd = &cobra.Command{
	Use:   "build [source.easy]",
	Short: "Compile an Easy source file into Python",
	Args:  cobra.MaximumNArgs(1),
	RunE:  buildRun,
}

func buildRun(cmd *cobra.Command, args []string) error {
	src, out, profile, err := resolveBuildInputs(args)
	if err != nil {
		return err
	}

	fmt.Printf("↪ building %q → %q ...\n", src, out+"/")

	outFile, err := compiler.CompileAndWrite(src, out, profile)
	if err != nil {
		return err
	}

	fmt.Printf("✔︎ wrote Python to %s\n", outFile)
	return nil
}

// resolveBuildInputs combines CLI arguments/flags with the project manifest.
// An explicit source argument wins; otherwise the manifest's entry is used.
func resolveBuildInputs(args []string) (src, out string, profile compiler.Profile, err error) {
	out = outDir
	prof := profileName

	if len(args) == 1 {
		src = args[0]
	} else {
		m, merr := project.Load(".")
		if merr != nil {
			return "", "", 0, fmt.Errorf("no source argument and no %s: %w", project.FileName, merr)
		}
		src = m.EntryPath()
		if !rootCmd.PersistentFlags().Changed("out") {
			out = m.OutPath()
		}
		if prof == "" {
			prof = m.Profile
		}
	}

	profile, err = compiler.ParseProfile(prof)
	if err != nil {
		return "", "", 0, err
	}
	return src, out, profile, nil
}
