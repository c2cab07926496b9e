package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcrisan/spendscan/internal/model"
	"github.com/pcrisan/spendscan/internal/receipt"
)

func receiptCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "receipt <file>",
		Short: "Parse raw OCR text of a scanned receipt",
		Long: `Extract the total amount, merchant name, and category from the raw
OCR text of a receipt. Pass "-" to read the text from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("reading receipt text: %w", err)
			}

			data := receipt.ParseText(string(raw))
			if format == "json" {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(data)
			}

			printReceipt(data)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json)")

	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printReceipt(data model.ReceiptData) {
	merchant := data.MerchantName
	if merchant == "" {
		merchant = "-"
	}

	fmt.Printf("Success:  %t\n", data.Success)
	fmt.Printf("Amount:   %s\n", data.Amount.StringFixed(2))
	fmt.Printf("Merchant: %s\n", merchant)
	fmt.Printf("Category: %s\n", data.Category)
	if data.Error != "" {
		fmt.Printf("Error:    %s\n", data.Error)
	}
}
