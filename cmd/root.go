package cmd

import (
	"github.com/spf13/cobra"
)

var (
	outDir      string
	profileName string
)

var rootCmd = &cobra.Command{
	Use:   "easyc",
	Short: "easyc CLI: compiler, runner, and REPL for the Easy language",
	Long: `easyc translates Easy (.easy) programs into Python and hands them to the
Python interpreter.

Commands:
  init   Scaffold a new Easy project
  build  Compile a (.easy) source file into (.py) Python
  run    Compile a source file and execute it with Python
  repl   Translate statements interactively
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for build artifacts")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "builtin profile: full or core (default from easy.yaml, else full)")

	rootCmd.AddCommand(InitCmd, BuildCmd, RunCmd, ReplCmd)
}
