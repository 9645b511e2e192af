package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	editorcmd "github.com/goliatone/go-newshub/internal/commands/editor"
	"github.com/goliatone/go-newshub/internal/editor"
)

type insertOutput struct {
	Text   string `json:"text"`
	Cursor int    `json:"cursor"`
}

func newInsertCmd() *cobra.Command {
	var (
		marker string
		start  int
		end    int
		file   string
	)
	cmd := &cobra.Command{
		Use:   "insert [text]",
		Short: "Apply a toolbar marker to text and print the result with the caret",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := getModule(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			var result editor.Result
			err = module.EditorCommand().Execute(cmd.Context(), editorcmd.InsertMarkerCommand{
				Text:     text,
				Start:    start,
				End:      end,
				Marker:   marker,
				OnResult: func(r editor.Result) { result = r },
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			return enc.Encode(insertOutput{Text: result.Text, Cursor: result.Cursor})
		},
	}
	cmd.Flags().StringVar(&marker, "marker", "", "toolbar marker (bold, italic, link, ...)")
	cmd.Flags().IntVar(&start, "start", 0, "selection start (rune offset)")
	cmd.Flags().IntVar(&end, "end", 0, "selection end (rune offset)")
	cmd.Flags().StringVar(&file, "file", "", "read text from file (- for stdin)")
	_ = cmd.MarkFlagRequired("marker")
	return cmd
}
