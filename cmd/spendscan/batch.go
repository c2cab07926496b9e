package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pcrisan/spendscan/internal/export"
	"github.com/pcrisan/spendscan/internal/parser"
)

func batchCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Parse a file of expense messages, one per line",
		Long: `Parse every non-empty line of the input file as a free-text expense
message and write the results as CSV or JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}
			if len(lines) == 0 {
				return fmt.Errorf("no messages found in %s", args[0])
			}

			currency := defaultCurrency()
			bar := progressbar.NewOptions(len(lines),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Parsing messages..."),
			)

			records := make([]export.Record, 0, len(lines))
			for _, line := range lines {
				records = append(records, export.Record{
					Message: line,
					Expense: parser.ParseChatExpense(line, currency),
				})
				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			out, closeOut, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer closeOut()

			writer, err := export.ForFormat(format, out)
			if err != nil {
				return err
			}
			if err := writer.Write(records); err != nil {
				return fmt.Errorf("writing results: %w", err)
			}

			slog.Info("batch parse complete", "messages", len(records), "format", format)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", export.FormatCSV, "output format (csv, json)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")

	return cmd
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
