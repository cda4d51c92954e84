package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/nbt"
	"github.com/wippyai/nbt/errors"
	"github.com/wippyai/nbt/export"
	"github.com/wippyai/nbt/source"
)

func main() {
	env := runEnv{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		tty:    term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := run(os.Args[1:], env); err != nil {
		if stderrors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runEnv carries the process streams so run can be exercised in tests.
type runEnv struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// create opens the --output file; nil means os.Create.
	create func(name string) (io.WriteCloser, error)
	tty    bool
}

func (e runEnv) createFile(name string) (io.WriteCloser, error) {
	if e.create != nil {
		return e.create(name)
	}
	return os.Create(name)
}

type flagValues struct {
	config      string
	format      string
	path        string
	output      string
	logLevel    string
	indent      int
	maxSize     int64
	maxDepth    int
	trace       bool
	stats       bool
	interactive bool
	noColor     bool
}

func newFlagSet(fv *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("nbtdump", pflag.ContinueOnError)
	fs.StringVarP(&fv.config, "config", "c", "", "TOML config file (default $"+configEnv+")")
	fs.StringVarP(&fv.format, "format", "f", "", "output format: text, json, yaml, cbor (default text on a terminal, json otherwise)")
	fs.StringVarP(&fv.path, "path", "p", "", "dot separated path of the value to print, e.g. Data.Player.Pos.0")
	fs.StringVarP(&fv.output, "output", "o", "", "write output to this file instead of stdout")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.IntVar(&fv.indent, "indent", 2, "spaces per nesting level, negative for compact JSON")
	fs.Int64Var(&fv.maxSize, "max-size", source.DefaultMaxSize, "largest accepted input after decompression, 0 for no limit")
	fs.IntVar(&fv.maxDepth, "max-depth", nbt.DefaultMaxDepth, "deepest nesting of lists and compounds accepted")
	fs.BoolVar(&fv.trace, "trace", false, "log every decoded entry at debug level")
	fs.BoolVar(&fv.stats, "stats", false, "print tag counts and depth instead of the tree")
	fs.BoolVarP(&fv.interactive, "interactive", "i", false, "browse the tree in a terminal UI")
	fs.BoolVar(&fv.noColor, "no-color", false, "disable colored output")
	return fs
}

func run(args []string, env runEnv) error {
	var fv flagValues
	fs := newFlagSet(&fv)
	fs.SetOutput(env.stderr)
	fs.Usage = func() {
		fmt.Fprintln(env.stderr, "Usage: nbtdump [flags] <file|->")
		fmt.Fprintln(env.stderr, "       nbtdump -i <file>  (interactive mode)")
		fmt.Fprintln(env.stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("expected one input, got %d", fs.NArg()))
	}
	input := "-"
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	}

	cfg, err := resolveConfig(fs, &fv, env.tty)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel, env.stderr)
	defer logger.Sync()
	source.SetLogger(logger.Named("source"))

	loader := source.Loader{MaxSize: cfg.MaxInputBytes}
	opts := []nbt.Option{nbt.WithMaxDepth(cfg.MaxDepth)}
	if cfg.Trace {
		opts = append(opts, nbt.WithObserver(nbt.NewZapObserver(logger.Named("decode"))))
	}

	if fv.interactive {
		if input == "-" {
			return errors.InvalidInput(errors.PhaseConfig, "interactive mode needs a file argument")
		}
		for _, name := range []string{"format", "output", "stats"} {
			if fs.Changed(name) {
				return errors.InvalidInput(errors.PhaseConfig,
					fmt.Sprintf("--%s cannot be combined with --interactive", name))
			}
		}
		return runInteractive(input, fv.path, loader, opts, cfg.Color)
	}

	root, err := decodeInput(input, env.stdin, loader, opts, logger)
	if err != nil {
		return err
	}

	var target nbt.Value = root
	name := ""
	if fv.path != "" {
		target, err = root.Lookup(fv.path)
		if err != nil {
			return err
		}
		name = fv.path
	}

	render := func(w io.Writer) error {
		if fv.stats {
			return writeStats(w, nbt.Summarize(target))
		}
		return export.Write(w, cfg.Format, target, export.Options{Name: name, Indent: cfg.Indent})
	}

	if fv.output == "" {
		if cfg.Format.Binary() && env.tty && !fv.stats {
			return errors.InvalidInput(errors.PhaseConfig,
				fmt.Sprintf("refusing to write %s to a terminal, use --output", cfg.Format))
		}
		return render(env.stdout)
	}

	f, err := env.createFile(fv.output)
	if err != nil {
		return errors.Wrap(errors.PhaseExport, errors.KindInvalidInput, err, "create output file")
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.PhaseExport, errors.KindInvalidData, err, "close output file")
	}
	return nil
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(fs *pflag.FlagSet, fv *flagValues, tty bool) (Config, error) {
	cfg, err := loadConfig(configPath(fv.config))
	if err != nil {
		return Config{}, err
	}

	if fs.Changed("format") {
		f, err := export.ParseFormat(fv.format)
		if err != nil {
			return Config{}, err
		}
		cfg.Format = f
	}
	if fs.Changed("log-level") {
		lvl, err := zapcore.ParseLevel(fv.logLevel)
		if err != nil {
			return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log-level")
		}
		cfg.LogLevel = lvl
	}
	if fs.Changed("indent") {
		cfg.Indent = fv.indent
	}
	if fs.Changed("max-size") {
		if fv.maxSize < 0 {
			return Config{}, errors.InvalidInput(errors.PhaseConfig, "max-size must not be negative")
		}
		cfg.MaxInputBytes = fv.maxSize
	}
	if fs.Changed("max-depth") {
		if fv.maxDepth <= 0 {
			return Config{}, errors.InvalidInput(errors.PhaseConfig, "max-depth must be positive")
		}
		cfg.MaxDepth = fv.maxDepth
	}
	if fs.Changed("trace") {
		cfg.Trace = fv.trace
	}
	if fs.Changed("no-color") {
		cfg.Color = !fv.noColor
	}

	if cfg.Trace && cfg.LogLevel > zapcore.DebugLevel {
		cfg.LogLevel = zapcore.DebugLevel
	}
	if cfg.Format == "" {
		cfg.Format = export.FormatJSON
		if tty {
			cfg.Format = export.FormatText
		}
	}
	if !tty {
		cfg.Color = false
	}
	return cfg, nil
}

func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func decodeInput(input string, stdin io.Reader, loader source.Loader, opts []nbt.Option, logger *zap.Logger) (*nbt.Compound, error) {
	var (
		data []byte
		c    source.Compression
		err  error
	)
	if input == "-" {
		data, c, err = loader.Read(stdin)
	} else {
		data, c, err = loader.Load(input)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("decoding",
		zap.String("input", input),
		zap.Stringer("compression", c),
		zap.Int("bytes", len(data)))

	root, err := nbt.DecodeWith(data, opts...)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func writeStats(w io.Writer, s nbt.Stats) error {
	if _, err := fmt.Fprintf(w, "values: %d\nmax depth: %d\n", s.Values, s.MaxDepth); err != nil {
		return err
	}
	for t := nbt.TagByte; t <= nbt.TagCompound; t++ {
		if n := s.Count(t); n > 0 {
			if _, err := fmt.Fprintf(w, "%s: %d\n", t, n); err != nil {
				return err
			}
		}
	}
	return nil
}
