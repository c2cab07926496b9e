package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pcrisan/spendscan/internal/classify"
	"github.com/pcrisan/spendscan/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category taxonomy and its keywords",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "Category\tKeywords\n")
			fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 14), strings.Repeat("-", 50))
			for _, category := range model.Categories() {
				keywords := classify.Keywords(category)
				label := strings.Join(keywords, ", ")
				if category == model.CategoryOther {
					label = "(default when nothing matches)"
				}
				fmt.Fprintf(w, "%s\t%s\n", category, label)
			}

			return nil
		},
	}
}
