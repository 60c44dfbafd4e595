package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	scarpet "github.com/FedericoCarboni/scarpet-parser"
)

var watchFiles bool

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Scan scripts and report problems",
	Long: `Scans every named script and prints each problem with a source
snippet. With --watch, keeps running and re-checks a file whenever it
changes on disk.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "re-check files on change")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := false
	for _, file := range args {
		n, err := checkFile(file)
		if err != nil {
			return err
		}
		if n > 0 {
			failed = true
		}
	}

	if watchFiles {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return watchLoop(ctx, args)
	}

	if failed {
		return fmt.Errorf("problems found")
	}
	return nil
}

// checkFile scans one file and prints its diagnostics. Returns the number
// of error-severity diagnostics.
func checkFile(file string) (int, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("cannot read %s: %w", file, err)
	}

	text := string(src)
	var sink scarpet.Sink
	scarpet.NewTokenizer(text, cfg.scanConfig(), &sink).Scan()

	for _, d := range sink.Errors {
		fmt.Print(errorStyle.Render("x") + " " + scarpet.RenderDiagnostic(text, file, d))
	}
	for _, d := range sink.Warnings {
		fmt.Print(warningStyle.Render("!") + " " + scarpet.RenderDiagnostic(text, file, d))
	}
	if sink.Len() == 0 {
		fmt.Println(okStyle.Render("ok") + " " + file)
	}
	return len(sink.Errors), nil
}

// watchLoop re-checks files as they change until ctx is cancelled. Editors
// replace files with rename+create, so the parent directories are watched
// rather than the files themselves.
func watchLoop(ctx context.Context, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("cannot watch %s: %w", filepath.Dir(abs), err)
		}
	}
	logger.Info("watching for changes", "files", len(watched))

	debounce := make(map[string]time.Time)
	const debounceDelay = 200 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if last, seen := debounce[abs]; seen && time.Since(last) < debounceDelay {
				continue
			}
			debounce[abs] = time.Now()

			fmt.Println(strings.Repeat("-", 40))
			if _, err := checkFile(event.Name); err != nil {
				logger.Error("re-check failed", "file", event.Name, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
