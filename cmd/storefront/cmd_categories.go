package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"GiftStore/internal/catalog"
)

// storefront categories: list seed categories with product counts.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories in first-seen order",
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := catalog.NewStore().List(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tPRODUCTS")
		fmt.Fprintln(w, "--------\t--------")
		for _, c := range catalog.DistinctCategories(products) {
			fmt.Fprintf(w, "%s\t%d\n", c, len(catalog.FilterByCategory(products, c)))
		}
		return w.Flush()
	},
}
