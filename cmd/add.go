package cmd

import (
	"fmt"

	"cmdfolder/catalog"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var category, description string

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a command to a category",
		Args:  cobra.MinimumNArgs(1),
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

			c, err := s.catalog.AddCommand(catalog.NewCommand{
				Text:        joinArgs(args),
				Description: description,
				CategoryID:  categoryID,
			})
			if err != nil {
				return err
			}
			s.warnUnsaved()
			fmt.Fprintln(cmd.OutOrStdout(), c.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category id or name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.catalog.DeleteCommand(args[0]) {
				fmt.Fprintf(cmd.ErrOrStderr(), "no command with id %s\n", args[0])
				return nil
			}
			s.warnUnsaved()
			return nil
		},
	}
}
