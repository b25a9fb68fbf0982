package cmd

import (
	"fmt"
	"strings"

	"cmdfolder/catalog"
	"cmdfolder/runner"

	"github.com/spf13/cobra"
)

// copyFn is replaced in tests.
var copyFn = runner.Copy

func newCopyCmd() *cobra.Command {
	var params []string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "copy ID",
		Short: "Copy a command to the clipboard, filling <placeholders>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			c, ok := s.catalog.Command(args[0])
			if !ok {
				return &catalog.NotFoundError{Kind: "command", ID: args[0]}
			}

			values := make(map[string]string)
			for _, p := range params {
				k, v, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q: want name=value", p)
				}
				values[k] = v
			}
			text := runner.SubstituteParams(c.Text, values)

			if missing := runner.ExtractParams(text); len(missing) > 0 {
				s.log.Debug("copying with unfilled placeholders", "id", c.ID, "params", missing)
			}
			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if err := copyFn(text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Command copied to clipboard!")
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "placeholder value as name=value (repeatable)")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print instead of copying")
	return cmd
}
