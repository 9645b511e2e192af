package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <key>",
		Short: "Look a key up in the locale table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := getModule(cmd)
			if err != nil {
				return err
			}
			locale := localeFor(cmd, module)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", locale.Tag, locale.Direction, locale.Translate(args[0]))
			return nil
		},
	}
}
