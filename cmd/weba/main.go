package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/weba"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
	mode    string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "weba",
		Short: "Inspect and normalize HTML with the weba tree API",
		Long: `weba parses HTML documents and fragments into weba nodes.

Use it to check how a template will be parsed and rendered, or to try
CSS, XPath and comment-anchor selectors against a file before wiring
them into component accessors. FILE may be "-" to read standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().StringVar(&a.mode, "mode", "auto", "Parser mode: auto, fragment or document")

	root.AddCommand(
		a.renderCmd(),
		a.selectCmd(),
		a.anchorsCmd(),
		versionCmd(out),
	)
	return root
}

func (a *app) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
}

// load parses the named file, or standard input for "-".
func (a *app) load(name string) (*weba.Node, error) {
	mode, err := weba.ParseParserMode(a.mode)
	if err != nil {
		return nil, err
	}
	var b []byte
	if name == "-" {
		b, err = io.ReadAll(a.in)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	a.logger().Debug("parsing", "file", name, "bytes", len(b), "mode", mode.String())
	return weba.ParseBytes(b, weba.WithParser(mode))
}

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Parse FILE and print the rendered tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			if _, err := n.WriteTo(a.out); err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out)
			return err
		},
	}
}

func (a *app) selectCmd() *cobra.Command {
	var useXPath, textOnly bool

	cmd := &cobra.Command{
		Use:   "select FILE SELECTOR",
		Short: "Print every node of FILE matching SELECTOR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			var found []*weba.Node
			if useXPath {
				found, err = n.XPath(args[1])
			} else {
				found, err = n.Select(args[1])
			}
			if err != nil {
				return err
			}
			a.logger().Debug("selected", "selector", args[1], "matches", len(found))
			return a.print(found, textOnly)
		},
	}
	cmd.Flags().BoolVarP(&useXPath, "xpath", "x", false, "Treat SELECTOR as an XPath expression")
	cmd.Flags().BoolVarP(&textOnly, "text", "t", false, "Print text content instead of markup")
	return cmd
}

func (a *app) anchorsCmd() *cobra.Command {
	var textOnly bool

	cmd := &cobra.Command{
		Use:   "anchors FILE MARKER",
		Short: "Print the nodes following comments that contain MARKER",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			found := n.CommentAnchors(args[1])
			a.logger().Debug("anchors", "marker", args[1], "matches", len(found))
			return a.print(found, textOnly)
		},
	}
	cmd.Flags().BoolVarP(&textOnly, "text", "t", false, "Print text content instead of markup")
	return cmd
}

func (a *app) print(nodes []*weba.Node, textOnly bool) error {
	for _, n := range nodes {
		s := n.String()
		if textOnly {
			s = n.Text()
		}
		if _, err := fmt.Fprintln(a.out, s); err != nil {
			return err
		}
	}
	return nil
}

func versionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "weba version %s (%s)\n", version, commit)
		},
	}
}
