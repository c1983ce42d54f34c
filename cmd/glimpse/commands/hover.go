package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newHoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hover <file.tex>",
		Short: "Print the hover preview for a position in a LaTeX document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, _ := cmd.Flags().GetInt("line")
			col, _ := cmd.Flags().GetInt("col")

			content, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Join(domain.ErrDocumentReadFailed, zerr.With(err, "path", args[0]))
			}

			pos := domain.Position{Line: line, Character: col}
			hover := c.app.Hover(cmd.Context(), args[0], string(content), pos)

			out := cmd.OutOrStdout()
			if hover == nil {
				_, _ = fmt.Fprintln(out, "no hover")
				return nil
			}
			_, _ = fmt.Fprintln(out, hover.Markdown)
			_, _ = fmt.Fprintf(out, "range %d:%d-%d:%d\n",
				hover.Range.Start.Line, hover.Range.Start.Character,
				hover.Range.End.Line, hover.Range.End.Character)
			return nil
		},
	}
	cmd.Flags().IntP("line", "l", 0, "Zero-based line of the cursor")
	cmd.Flags().IntP("col", "c", 0, "Zero-based character of the cursor")
	return cmd
}
