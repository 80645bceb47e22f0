package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/minicc-lang/minicc/internal/lexer"
	"github.com/minicc-lang/minicc/internal/output"
)

// Exit code constants
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitLexError         = 3
)

// defaultSource is used when no source file is given and nothing is piped in.
const defaultSource = "int main () { return 0; }"

func main() {
	var (
		compact bool
		watch   bool
	)

	rootCmd := &cobra.Command{
		Use:   "minicc [source-file]",
		Short: "Tokenize minicc source and emit the token stream as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			code, err := run(file, compact, watch)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(code)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVar(&compact, "compact", false, "Emit compact JSON instead of indented output")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Re-tokenize the source file whenever it changes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitInvalidArguments)
	}
}

func run(file string, compact, watch bool) (int, error) {
	if watch {
		if file == "" || file == "-" {
			return ExitInvalidArguments, fmt.Errorf("--watch requires a source file argument")
		}
		return watchAndLex(file, compact)
	}

	source, err := readSource(file)
	if err != nil {
		return ExitIOError, err
	}
	return lexAndEncode(source, os.Stdout, compact), nil
}

// readSource handles the 3 modes of input:
// 1. Explicit stdin with "-"
// 2. File input
// 3. No argument: piped input if present, otherwise the default example code
func readSource(file string) (string, error) {
	if file == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(content), nil
	}

	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("error reading file %s: %w", file, err)
		}
		return string(content), nil
	}

	if hasPipedInput() {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(content), nil
	}

	fmt.Fprintln(os.Stderr, "No source file provided. Use default example code.")
	return defaultSource, nil
}

// lexAndEncode runs one scan, writes the JSON result to w and returns the
// process exit code: 0 for a successful scan, ExitLexError otherwise.
func lexAndEncode(source string, w io.Writer, compact bool) int {
	fmt.Fprintln(os.Stderr, "--- Source Code ---")
	fmt.Fprintln(os.Stderr, source)
	fmt.Fprintln(os.Stderr, "-------------------")

	result := output.FromScan(lexer.Tokenize(source))
	if err := result.Encode(w, compact); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		return ExitIOError
	}
	if !result.Ok() {
		return ExitLexError
	}
	return ExitSuccess
}

// watchAndLex tokenizes the file once, then again on every change until
// interrupted. The exit code reflects the most recent scan.
func watchAndLex(file string, compact bool) (int, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ExitIOError, fmt.Errorf("error creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(file); err != nil {
		return ExitIOError, fmt.Errorf("error watching %s: %w", file, err)
	}

	lexOnce := func() (int, error) {
		source, err := readSource(file)
		if err != nil {
			return ExitIOError, err
		}
		return lexAndEncode(source, os.Stdout, compact), nil
	}

	code, err := lexOnce()
	if err != nil {
		return code, err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return code, nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				// Editors often replace the file; re-arm the watch so
				// renames do not end the loop.
				_ = watcher.Add(file)
				code, err = lexOnce()
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return code, nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", watchErr)
		case <-interrupt:
			return code, nil
		}
	}
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// Check if stdin is not a character device (i.e., it's piped)
	return (stat.Mode() & os.ModeCharDevice) == 0
}
