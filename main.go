package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// app carries what would otherwise be process globals, so commands can run against a fake
// environment and clock.
type app struct {
	getenv func(string) string
	now    func() time.Time

	dir     string
	verbose bool
}

func main() {
	a := &app{getenv: os.Getenv, now: time.Now}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "memo",
		Short:         "Record and show today's memos",
		Long:          "memo appends timestamped notes to a `### memo` section in $" + memoDirEnv + "/YYYY-MM-DD.md.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)
			if a.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}
			dir, err := resolveMemoDir(a.getenv)
			if err != nil {
				return err
			}
			if err := ensureDir(dir); err != nil {
				return err
			}
			a.dir = dir
			log.Printf("memo dir: %s", dir)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "add <text...>",
			Short: "Add a memo to today's file",
			RunE:  a.runAdd,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List today's memos",
			Args:  cobra.NoArgs,
			RunE:  a.runList,
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print config variables",
			Args:  cobra.NoArgs,
			RunE:  a.runConfig,
		},
		&cobra.Command{
			Use:   "headings [file]",
			Short: "List the headings in today's file (or the given file)",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runHeadings,
		},
		newShowCmd(a),
	)
	return root
}

func (a *app) todayFilename() string {
	return todayFilename(a.dir, a.now())
}

// EmptyInputError is returned when `add` is given no text. It is reported as a warning only.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "memo text is empty"
}

// entryText joins the words of `add` into a single entry.
func entryText(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", &EmptyInputError{}
	}
	return text, nil
}

func (a *app) runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	text, err := entryText(args)
	var empty *EmptyInputError
	if errors.As(err, &empty) {
		fmt.Fprintln(out, "⚠️  memo text is empty.")
		return nil
	}

	now := a.now()
	file := todayFilename(a.dir, now)
	lines, exists, err := loadLines(file)
	if err != nil {
		return err
	}
	log.Printf("loaded %s: exists=%v, %d lines", file, exists, len(lines))

	if err := writeLines(file, appendEntry(lines, text, now)); err != nil {
		return err
	}
	fmt.Fprintf(out, "✅  added memo: %s\n", file)
	return nil
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	file := a.todayFilename()
	lines, exists, err := loadLines(file)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(out, "📭 no memos for today yet.")
		return nil
	}
	entries, ok := listEntries(lines)
	if !ok {
		fmt.Fprintf(out, "📭 no `%s` section in today's file yet.\n", memoHeading)
		return nil
	}
	fmt.Fprintln(out, "📝 today's memos:")
	for _, e := range entries {
		fmt.Fprintf(out, "・%s\n", e)
	}
	return nil
}

func (a *app) runConfig(cmd *cobra.Command, args []string) error {
	c, err := json.Marshal(map[string]interface{}{"dir": a.dir, "today": a.todayFilename(), "heading": memoHeading})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(c))
	return nil
}

func (a *app) runHeadings(cmd *cobra.Command, args []string) error {
	file := a.todayFilename()
	if len(args) > 0 {
		file = args[0]
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	for _, h := range headings(b) {
		fmt.Fprintln(cmd.OutOrStdout(), h)
	}
	return nil
}

func newShowCmd(a *app) *cobra.Command {
	var terminal bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print today's file, reformatted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			file := a.todayFilename()
			doc, err := parseFile(file)
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintln(out, "📭 no memos for today yet.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			render(newRenderer(terminal), out, doc)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&terminal, "terminal", "t", false, "Render with terminal styling")
	return cmd
}
