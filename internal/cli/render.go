package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-newshub/internal/markdown"
)

func newRenderCmd() *cobra.Command {
	var (
		mode string
		file string
	)
	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render markdown in preview, article or standard mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := getModule(cmd)
			if err != nil {
				return err
			}
			switch markdown.Mode(strings.ToLower(mode)) {
			case markdown.ModePreview, markdown.ModeArticle, markdown.ModeStandard:
			default:
				return fmt.Errorf("render: unknown mode %q", mode)
			}
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), module.Render(text, markdown.Mode(strings.ToLower(mode))))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(markdown.ModePreview), "preview, article or standard")
	cmd.Flags().StringVar(&file, "file", "", "read markdown from file (- for stdin)")
	return cmd
}
