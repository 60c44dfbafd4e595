package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf16"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	scarpet "github.com/FedericoCarboni/scarpet-parser"
)

const replPrompt = "==> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive token scanner",
	Long: `Reads lines and prints the tokens and problems each one scans to.
New line markers ($) are accepted. Ctrl+C cancels input, Ctrl+D exits.
Type :quit to exit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	fmt.Printf("scarpet-tools %s token REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", scarpet.Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.Repl.HistoryFile
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	// Markers are line separators in command-block scripts, so the REPL
	// always accepts them.
	scanCfg := cfg.scanConfig()
	scanCfg.AllowNewLineMarkers = true

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
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

		ln.AppendHistory(line)
		printScan(line, scanCfg)
	}
}

func printScan(line string, scanCfg scarpet.Config) {
	units := utf16.Encode([]rune(line))
	var sink scarpet.Sink
	tokens := scarpet.NewTokenizerUTF16(units, scanCfg, &sink).Scan()

	for _, t := range tokens {
		fmt.Println(kindStyle.Render(t.Kind.String()) + valueStyle.Render(fmt.Sprintf("%q", t.Lexeme(units))))
	}
	for _, d := range sink.Errors {
		fmt.Print(scarpet.RenderDiagnostic(line, "", d))
	}
	for _, d := range sink.Warnings {
		fmt.Print(scarpet.RenderDiagnostic(line, "", d))
	}
}
