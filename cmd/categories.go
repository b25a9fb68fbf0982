package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List categories with their command counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, cat := range s.catalog.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", cat.ID, cat.Name, s.catalog.CountIn(cat.ID))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME...",
			Short: "Add a category",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := openSession()
				if err != nil {
					return err
				}
				defer s.Close()

				cat, err := s.catalog.AddCategory(joinArgs(args))
				if err != nil {
					return err
				}
				s.warnUnsaved()
				fmt.Fprintln(cmd.OutOrStdout(), cat.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename ID NAME...",
			Short: "Rename a category",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := openSession()
				if err != nil {
					return err
				}
				defer s.Close()

				if _, err := s.catalog.RenameCategory(args[0], joinArgs(args[1:])); err != nil {
					return err
				}
				s.warnUnsaved()
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm ID",
			Short: "Remove a category and all of its commands",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := openSession()
				if err != nil {
					return err
				}
				defer s.Close()

				if _, ok := s.catalog.Category(args[0]); !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "no category with id %s\n", args[0])
					return nil
				}
				n := s.catalog.DeleteCategory(args[0])
				s.warnUnsaved()
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s and %d commands\n", args[0], n)
				return nil
			},
		},
	)
	return cmd
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
