// Package shell is an interactive prompt that balances the tags of the
// sentences typed in.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/corefclean/balance"
	"github.com/revelaction/corefclean/render"
)

const quit = "quit"

type Handler struct {
	Balancer *balance.Balancer
	Renderer *render.Renderer
	Out      io.Writer
}

func NewHandler(b *balance.Balancer, r *render.Renderer, out io.Writer) *Handler {
	return &Handler{
		Balancer: b,
		Renderer: r,
		Out:      out,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle color, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      ✍  ", h.completer(),
			prompt.OptionTitle("corefclean shell"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(8),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Fprintf(h.Out, "Color set to %t\n", h.Renderer.HasColor)
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		out, ok := h.Eval(in)
		if !ok {
			continue
		}

		history = append(history, in)
		fmt.Fprintln(h.Out, out)
	}
}

// Eval balances the sentence in line and returns it rendered with a summary
// of the repairs. ok is false for a blank line.
func (h *Handler) Eval(line string) (out string, ok bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", false
	}

	balanced, res := h.Balancer.Sentence(tokens)

	var sb strings.Builder
	sb.WriteString(h.Renderer.SentenceString(tokens, balanced))
	fmt.Fprintf(&sb, "\n      🔧 %d repaired, %d dropped, %d abandoned", res.Repairs, res.Dropped, res.Abandoned)
	return sb.String(), true
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		word := in.GetWordBeforeCursor()
		if word == "" {
			return nil
		}

		return prompt.FilterHasPrefix([]prompt.Suggest{{Text: quit, Description: "leave the shell"}}, word, false)
	}
}
