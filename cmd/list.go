package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var category, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List commands, optionally by category or search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			categoryID := ""
			if category != "" {
				cat, err := s.resolveCategory(cmd.ErrOrStderr(), category)
				if err != nil {
					return err
				}
				categoryID = cat.ID
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range s.catalog.FilteredCommands(query, categoryID) {
				name := c.CategoryID
				if cat, ok := s.catalog.Category(c.CategoryID); ok {
					name = cat.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, name, c.Text, c.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category id or name")
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text search across all categories")
	return cmd
}
