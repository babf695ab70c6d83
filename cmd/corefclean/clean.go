package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/corefclean/clean"
	"github.com/revelaction/corefclean/config"
	"github.com/revelaction/corefclean/conllu"
	"github.com/revelaction/corefclean/file"
	"github.com/revelaction/corefclean/logging"
	"github.com/revelaction/corefclean/render"
	"github.com/revelaction/corefclean/stat"
	"github.com/revelaction/corefclean/storage/filesystem"
)

const cleanedSuffix = "-cleaned.txt"

func cleanCommand(opts CleanOptions, input, gold string, ui UI) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(ui.Err, level, cfg.Log.Format)

	library, err := conllu.ReadFile(gold, cfg.ZeroMentions)
	if err != nil {
		return err
	}

	noisy, err := filesystem.ReadLines(input)
	if err != nil {
		return err
	}

	logger.Info("read input", slog.String("input", input), slog.Int("docs", len(noisy)),
		slog.String("gold", gold), slog.Int("gold_docs", len(library)))

	cleaner := clean.New(logger)
	cleaner.Workers = cfg.Workers

	var onDone func(clean.Result)
	stopProgress := func() {}
	showProgress := !opts.NoProgress && !opts.Report && enabled(cfg.Progress, ui.Out)
	if showProgress {
		progress := uiprogress.New()
		progress.Out = ui.Out
		progress.Start()
		stopProgress = progress.Stop

		bar := progress.AddBar(min(len(noisy), len(library)))
		bar.AppendCompleted()
		bar.PrependElapsed()
		onDone = func(clean.Result) {
			bar.Incr()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := cleaner.Run(ctx, noisy, library, onDone)
	stopProgress()
	if err != nil {
		return err
	}

	out := opts.Out
	if out == "" {
		out = outputPath(input)
	}

	var p Pool
	defer p.Close()

	writer, runId, err := NewDocWriter(&p, out, input, gold)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, res := range results {
		if err := writer.Write(res); err != nil {
			writer.Close()
			return err
		}
		hdl.Aggregate(res)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out, err)
	}

	stats := hdl.Get()
	logger.Info("cleaned", slog.String("output", out), slog.Int("docs", stats.NumDocs),
		slog.Int("repairs", stats.Balance.Repairs), slog.Int("dropped", stats.Balance.Dropped))

	if opts.Report {
		return render.NewJSONRenderer(ui.Out).Render(render.Report{RunId: runId, Stats: stats, Docs: results})
	}

	r := render.NewRenderer(ui.Out)
	r.Stats(stats)
	return nil
}

// loadConfig reads the config file, if any, and applies the command line
// overrides.
func loadConfig(opts CleanOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		cfg, err = config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
	}

	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}

	if opts.ZeroMentions {
		cfg.ZeroMentions = true
	}

	return cfg, nil
}

// outputPath returns the default output file of input: its .txt extension
// replaced by -cleaned.txt, in the same directory.
func outputPath(input string) string {
	base := strings.TrimSuffix(input, file.XzExt)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + cleanedSuffix
}
