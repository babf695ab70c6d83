package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/corefclean/config"
)

// Option structs for subcommands that have flags
type CleanOptions struct {
	Out          string
	Config       string
	Workers      int
	ZeroMentions bool
	Verbose      bool
	NoProgress   bool
	Report       bool
}

type BalanceOptions struct {
	NoColor bool
}

type ShellOptions struct {
	NoColor bool
}

type StatOptions struct {
	Run string
}

type ExportOptions struct {
	From string
	To   string
	Run  string
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("corefclean", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

// parse parses args into fs. On error the usage goes to ui.Out for -h and to
// ui.Err otherwise.
func parse(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseCleanArgs(args []string, ui UI) (CleanOptions, string, string, error) {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CleanOptions
	fs.StringVar(&opts.Out, "output", "", "Output file. A .db, .sqlite or .sqlite3 extension writes a SQLite run (default: <input>-cleaned.txt)")
	fs.StringVar(&opts.Out, "o", "", "alias for -output")
	fs.StringVar(&opts.Config, "config", os.Getenv(config.EnvPath), "YAML config file")
	fs.StringVar(&opts.Config, "c", os.Getenv(config.EnvPath), "alias for -config")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of documents cleaned concurrently (default from config)")
	fs.IntVar(&opts.Workers, "w", 0, "alias for -workers")
	fs.BoolVar(&opts.ZeroMentions, "zero-mentions", false, "Keep empty nodes of the gold file as words")
	fs.BoolVar(&opts.ZeroMentions, "z", false, "alias for -zero-mentions")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Log cleaning diagnostics")
	fs.BoolVar(&opts.Verbose, "v", false, "alias for -verbose")
	fs.BoolVar(&opts.NoProgress, "no-progress", false, "Do not show the progress bar")
	fs.BoolVar(&opts.Report, "report", false, "Print a JSON report instead of the summary")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s clean [options] <input> <gold>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Clean the tagged documents of <input> (one per line) against the CoNLL-U <gold> file.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parse(fs, args, ui); err != nil {
		return opts, "", "", err
	}

	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", "", errors.New("clean command needs exactly two arguments: <input> <gold>")
	}

	if opts.Workers < 0 {
		return opts, "", "", fmt.Errorf("invalid number of workers: %d", opts.Workers)
	}

	return opts, fs.Arg(0), fs.Arg(1), nil
}

func parseBalanceArgs(args []string, ui UI) (BalanceOptions, []string, error) {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts BalanceOptions
	fs.BoolVar(&opts.NoColor, "no-color", false, "Do not highlight repaired words")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s balance [options] <token>...\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Balance the entity tags of one sentence.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parse(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("balance command needs at least one token")
	}

	return opts, fs.Args(), nil
}

func parseShellArgs(args []string, ui UI) (ShellOptions, error) {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ShellOptions
	fs.BoolVar(&opts.NoColor, "no-color", false, "Do not highlight repaired words")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s shell [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive balancing mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parse(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, errors.New("shell command accepts no arguments")
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.Run, "run", "", "Run id (default: the last run)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] <db>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the runs of a SQLite output and show the statistics of one run.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parse(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("stat command needs exactly one argument: <db>")
	}

	db := fs.Arg(0)
	if _, err := os.Stat(db); err != nil {
		return opts, "", fmt.Errorf("database not found: %s", db)
	}

	return opts, db, nil
}

func parseExportArgs(args []string, ui UI) (ExportOptions, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportOptions
	fs.StringVar(&opts.From, "from", "", "Source SQLite database file")
	fs.StringVar(&opts.To, "to", "", "Target text file, xz compressed if it ends in .xz")
	fs.StringVar(&opts.Run, "run", "", "Run id (default: the last run)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export --from <sqlite_file> --to <file> [--run id]\n", os.Args[0])
	}

	if err := parse(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

// parseNoArgs parses the flags of a command without options or arguments.
func parseNoArgs(name, description string, args []string, ui UI) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s %s\n", os.Args[0], name)
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  %s\n", description)
	}

	return parse(fs, args, ui)
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Clean entity tagged model output against a gold tokenization\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  clean     Align and balance a file of tagged documents.\n")
		_, _ = fmt.Fprintf(output, "  balance   Balance the tags of one sentence.\n")
		_, _ = fmt.Fprintf(output, "  shell     Enter interactive balancing mode.\n")
		_, _ = fmt.Fprintf(output, "  stat      Show statistics of a SQLite run.\n")
		_, _ = fmt.Fprintf(output, "  export    Export the cleaned text of a SQLite run.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version information.\n")
		_, _ = fmt.Fprintf(output, "  bash      Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
