package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pcrisan/spendscan/internal/export"
	"github.com/pcrisan/spendscan/internal/model"
	"github.com/pcrisan/spendscan/internal/parser"
)

func parseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <message>",
		Short: "Parse a free-text expense message",
		Long: `Extract amount, currency, merchant, and category from a natural
language expense message, e.g.:

  spendscan parse "I bought groceries from Auchan for 200 lei"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			parsed := parser.ParseChatExpense(message, defaultCurrency())

			if format == "text" {
				printParsed(parsed)
				return nil
			}

			writer, err := export.ForFormat(format, os.Stdout)
			if err != nil {
				return err
			}
			return writer.Write([]export.Record{{Message: message, Expense: parsed}})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json, csv)")

	return cmd
}

func defaultCurrency() model.Currency {
	return model.Currency(strings.ToUpper(viper.GetString("parser.default_currency")))
}

func printParsed(parsed model.ParsedExpense) {
	amount := "-"
	if parsed.HasAmount() {
		amount = fmt.Sprintf("%s %s", parsed.Amount.StringFixed(2), parsed.Currency)
	}
	merchant := parsed.Merchant
	if merchant == "" {
		merchant = "-"
	}

	fmt.Printf("Amount:      %s\n", amount)
	fmt.Printf("Merchant:    %s\n", merchant)
	fmt.Printf("Category:    %s\n", parsed.Category)
	fmt.Printf("Description: %s\n", parsed.Description)
	fmt.Printf("Confidence:  %.2f\n", parsed.Confidence)

	if suggestions := parser.Suggestions(parsed); len(suggestions) > 0 {
		fmt.Println("\nThis parse is not very confident. To improve it:")
		for _, suggestion := range suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}
}
