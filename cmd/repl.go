package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/easylang/easyc/internal/compiler"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".easyc_history"
	promptMain  = "==> "
	promptCont  = "... "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

// repl: translate statements interactively, showing the generated Python
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Translate Easy statements interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := compiler.ParseProfile(profileName)
		if err != nil {
			return err
		}
		return runRepl(profile)
	},
}

func runRepl(profile compiler.Profile) error {
	fmt.Println("easyc REPL. Statements are translated, not executed.")
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, ok := readByCompileProbe(ln, profile, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.EqualFold(trimmed, ":quit") {
				return nil
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		out, err := compiler.New(profile).Compile(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Print(blue(stripHeader(out)))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByCompileProbe reads lines until the accumulated input stops failing
// with an unclosed-block error, i.e. until every opened block has its 'end'.
func readByCompileProbe(ln *liner.State, profile compiler.Profile, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, cerr := compiler.New(profile).Compile(src); needsMoreInput(cerr) {
			continue
		}
		return src, true
	}
}

func needsMoreInput(err error) bool {
	var cerr *compiler.Error
	return errors.As(err, &cerr) && cerr.Code == compiler.UnclosedBlock
}

// stripHeader drops the fixed import lines so the REPL shows only the
// translation of what was just typed.
func stripHeader(out string) string {
	var body []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "import ") {
			continue
		}
		body = append(body, line)
	}
	return strings.Join(body, "\n")
}
