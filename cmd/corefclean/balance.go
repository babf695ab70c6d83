package main

import (
	"fmt"
	"io"
	"os"

	"github.com/revelaction/corefclean/balance"
	"github.com/revelaction/corefclean/config"
	"github.com/revelaction/corefclean/render"
)

func balanceCommand(opts BalanceOptions, tokens []string, ui UI) error {
	hasColor, err := colorEnabled(opts.NoColor, ui.Out)
	if err != nil {
		return err
	}

	balanced, res := balance.New(nil).Sentence(tokens)

	r := render.NewRenderer(ui.Out)
	r.HasColor = hasColor
	r.HasPrefix = false
	r.Sentence("", tokens, balanced)

	if res.Repairs+res.Dropped+res.Abandoned > 0 {
		fmt.Fprintf(ui.Err, "🔧 %d repaired, %d dropped, %d abandoned\n", res.Repairs, res.Dropped, res.Abandoned)
	}
	return nil
}

// colorEnabled decides whether to color the output written to w. The
// -no-color flag wins over the color key of the config file named by the
// environment, which wins over terminal detection.
func colorEnabled(noColor bool, w io.Writer) (bool, error) {
	if noColor {
		return false, nil
	}

	cfg := config.Default()
	if path := os.Getenv(config.EnvPath); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return false, err
		}
	}

	return enabled(cfg.Color, w), nil
}
