package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/commentify"
	"pkt.systems/commentify/internal/clipboard"
	"pkt.systems/commentify/internal/logger"
	"pkt.systems/version"
)

const (
	indentStep    = 4
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	defaultSource = "auto"
)

func init() {
	version.SetDefaultModule("pkt.systems/commentify")
}

func main() {
	a := app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		clip:   clipboard.System(),
		stdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	code := a.run(os.Args[1:])
	logger.Sync()
	os.Exit(code)
}

// app holds the process boundary so tests can run the CLI in memory.
type app struct {
	stdin           io.Reader
	stdout          io.Writer
	stderr          io.Writer
	clip            clipboard.Provider
	stdinIsTerminal func() bool
}

type options struct {
	python      bool
	javascript  bool
	line        bool
	block       bool
	remove      bool
	quote       bool
	strip       bool
	maxWidth    int
	indent      int
	source      string
	copy        bool
	silent      bool
	debug       bool
	showVersion bool
}

type source int

const (
	sourceClipboard source = iota
	sourceStdin
)

func (s source) String() string {
	if s == sourceStdin {
		return "stdin"
	}
	return "clipboard"
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("commentify", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&opts.python, "python", "p", false, `Python style: docstring (""") or # line comments`)
	flags.BoolVarP(&opts.javascript, "javascript", "j", false, "JavaScript style: /** */ block or // line comments; halves the indent")
	flags.BoolVarP(&opts.line, "line-comments", "l", false, "Output line comments")
	flags.BoolVarP(&opts.block, "block-comments", "b", true, "Output a block comment or docstring")
	flags.IntVarP(&opts.maxWidth, "max-lines", "m", commentify.DefaultMaxWidth, "Maximum line length, indentation and delimiters included")
	flags.BoolVarP(&opts.remove, "remove", "r", false, "Remove line breaks; overrides comment options")
	flags.BoolVarP(&opts.quote, "quote", "q", false, "Surround each paragraph with quotes; overrides everything else")
	flags.CountVarP(&opts.indent, "indent", "i", "Indent by 4 spaces per use (2 with --javascript), e.g. -jiii")
	flags.BoolVarP(&opts.strip, "strip-newlines", "s", false, "Strip line breaks before reformatting")
	flags.StringVar(&opts.source, "source", defaultSource, "Input source: auto|clipboard|stdin")
	flags.BoolVar(&opts.copy, "copy", false, "Copy the result to the clipboard even when reading stdin")
	flags.BoolVar(&opts.silent, "silent", false, "Do not echo the result to stdout")
	flags.BoolVar(&opts.debug, "debug", false, "Log debug details to stderr")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SortFlags = false
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: commentify [flags]\n")
		fmt.Fprintln(stderr, "\nReformats clipboard text (or stdin) as code comments, quotes, or a single line.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}
	return opts, nil
}

// resolveMode applies Quote > RemoveBreaks > LineComment > BlockComment.
func resolveMode(opts options) commentify.Mode {
	switch {
	case opts.quote:
		return commentify.ModeQuote
	case opts.remove:
		return commentify.ModeRemoveBreaks
	case opts.line:
		return commentify.ModeLineComment
	default:
		return commentify.ModeBlockComment
	}
}

func resolveStyle(opts options) commentify.Style {
	switch {
	case opts.python:
		return commentify.StylePython
	case opts.javascript:
		return commentify.StyleJS
	default:
		return commentify.StyleNone
	}
}

func resolveConfig(opts options) (commentify.Config, error) {
	cfg := commentify.NewConfig(
		commentify.WithMode(resolveMode(opts)),
		commentify.WithStyle(resolveStyle(opts)),
		commentify.WithMaxWidth(opts.maxWidth),
		commentify.WithIndent(opts.indent*indentStep),
		commentify.WithStripNewlines(opts.strip),
	)
	if opts.maxWidth <= 0 {
		return cfg, fmt.Errorf("%w: --max-lines must be > 0", commentify.ErrInvalidConfiguration)
	}
	return cfg, cfg.Validate()
}

func resolveSource(mode string, stdinIsTerminal func() bool) (source, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if stdinIsTerminal != nil && !stdinIsTerminal() {
			return sourceStdin, nil
		}
		return sourceClipboard, nil
	case "clipboard", "clip":
		return sourceClipboard, nil
	case "stdin", "-":
		return sourceStdin, nil
	default:
		return sourceClipboard, fmt.Errorf("expected auto|clipboard|stdin")
	}
}

func (a app) run(args []string) int {
	opts, err := parseFlags(args, a.stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(a.stderr, "%v\n", err)
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintln(a.stdout, version.Module(), version.Current())
		return exitOK
	}

	level := logger.InfoLevel
	if opts.debug {
		level = logger.DebugLevel
	}
	ctx := logger.WithLogger(context.Background(), logger.Get(level))

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(a.stderr, "invalid options: %v\n", err)
		return exitUsage
	}
	src, err := resolveSource(opts.source, a.stdinIsTerminal)
	if err != nil {
		fmt.Fprintf(a.stderr, "invalid --source %q: %v\n", opts.source, err)
		return exitUsage
	}
	if err := a.process(ctx, cfg, src, opts); err != nil {
		fmt.Fprintf(a.stderr, "commentify: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func (a app) process(ctx context.Context, cfg commentify.Config, src source, opts options) error {
	log := logger.FromContext(ctx).WithValues("source", src.String())
	log.V(1).Info("resolved configuration",
		"mode", cfg.Mode.String(),
		"style", cfg.Style.String(),
		"maxWidth", cfg.MaxWidth,
		"indent", cfg.EffectiveIndent(),
		"stripNewlines", cfg.StripNewlines,
	)

	in, err := a.input(src)
	if err != nil {
		return err
	}
	var rendered strings.Builder
	err = commentify.Render(commentify.RenderRequest{
		Reader:       in,
		Writer:       &rendered,
		Config:       cfg,
		StripEscapes: true,
	})
	if err != nil {
		return fmt.Errorf("%s input: %w", src, err)
	}
	out := rendered.String()
	log.V(1).Info("transformed", "outputBytes", len(out))

	if !opts.silent {
		if err := echo(a.stdout, out); err != nil {
			return fmt.Errorf("echo: %w", err)
		}
	}
	if src == sourceClipboard || opts.copy {
		if err := a.clip.Write(out); err != nil {
			return err
		}
		log.V(1).Info("copied result to clipboard")
	}
	return nil
}

func (a app) input(src source) (io.Reader, error) {
	if src == sourceStdin {
		return a.stdin, nil
	}
	text, err := a.clip.Read()
	if err != nil {
		return nil, err
	}
	return strings.NewReader(text), nil
}

// echo prints out and ends the output with a newline if it lacks one.
func echo(w io.Writer, out string) error {
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
