package cmd

import (
	"fmt"
	"os"
	"unicode/utf16"

	"github.com/spf13/cobra"

	scarpet "github.com/FedericoCarboni/scarpet-parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	text := string(src)
	units := utf16.Encode([]rune(text))
	var sink scarpet.Sink
	tok := scarpet.NewTokenizerUTF16(units, cfg.scanConfig(), &sink)
	tokens := tok.Scan()
	logger.Debug("scanned", "file", args[0], "tokens", len(tokens), "diagnostics", sink.Len())

	for _, t := range tokens {
		pos := fmt.Sprintf("%s-%s", t.Start, t.End)
		lexeme := t.Lexeme(units)
		line := kindStyle.Render(t.Kind.String()) +
			posStyle.Render(pos) +
			valueStyle.Render(fmt.Sprintf("%q", lexeme))
		if t.HasError {
			line += " " + errorStyle.Render("!")
		}
		fmt.Println(line)
	}

	for _, d := range sink.Warnings {
		fmt.Fprint(os.Stderr, scarpet.RenderDiagnostic(text, args[0], d))
	}
	return scarpet.WrapDiagnostics(text, args[0], &sink)
}
