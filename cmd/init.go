package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/easylang/easyc/internal/project"
	"github.com/spf13/cobra"
)

const starterProgram = `# Welcome to Easy.
storage text greeting = text hello from easyc
print storage greeting
`

// init: scaffold a new project with a manifest and a starter source file
var InitCmd = &cobra.Command{
	Use:   "init <project-name>",
	Short: "Scaffold a new Easy project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		fmt.Printf("↪ scaffolding new project %q ...\n", name)

		if err := os.MkdirAll(name, 0o755); err != nil {
			return err
		}
		m := project.Default(name)
		if err := m.Save(name); err != nil {
			return err
		}
		entry := filepath.Join(name, m.Entry)
		if err := os.WriteFile(entry, []byte(starterProgram), 0o644); err != nil {
			return err
		}

		fmt.Printf("✔︎ wrote %s and %s\n", filepath.Join(name, project.FileName), entry)
		return nil
	},
}
