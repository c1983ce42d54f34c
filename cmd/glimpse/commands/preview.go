package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/zerr"
)

// noPreview is printed for references without a preview.
const noPreview = "no preview"

// previewResult is one entry of the --json output.
type previewResult struct {
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	URI       string `json:"uri,omitempty"`
}

func (c *CLI) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <ref>...",
		Short: "Render previews of graphics references",
		Long: "Render previews of graphics references and print one URI per reference.\n" +
			"PDF pages are rendered to SVG files in a temporary cache, raster images are\n" +
			"printed as inline data URIs.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			page, _ := cmd.Flags().GetInt("page")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			asJSON, _ := cmd.Flags().GetBool("json")

			project, err := c.previewProject(root)
			if err != nil {
				return err
			}

			opts := project.RenderOptions(page)
			if width > 0 {
				opts.Width = width
			}
			if height > 0 {
				opts.Height = height
			}

			previews := c.app.PreviewAll(cmd.Context(), project, args, opts)

			out := cmd.OutOrStdout()
			if asJSON {
				results := make([]previewResult, len(args))
				for i, ref := range args {
					results[i] = previewResult{Reference: ref, Kind: domain.PreviewNone.String()}
					if previews[i] != nil {
						results[i].Kind = previews[i].Kind.String()
						results[i].URI = previews[i].URI()
					}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, preview := range previews {
				if preview == nil {
					_, _ = fmt.Fprintln(out, noPreview)
					continue
				}
				_, _ = fmt.Fprintln(out, preview.URI())
			}
			return nil
		},
	}
	cmd.Flags().String("root", "", "Project root for relative references (default: configured root)")
	cmd.Flags().IntP("page", "p", domain.DefaultPageNumber, "Page of multi-page documents to render")
	cmd.Flags().Int("width", 0, "Maximum preview width (default: configured or 500)")
	cmd.Flags().Int("height", 0, "Maximum preview height (default: configured or 230)")
	cmd.Flags().Bool("json", false, "Print the previews as JSON")
	return cmd
}

// previewProject builds the project for the preview command. An explicit root
// takes precedence over the configured one. Without either, relative
// references cannot be resolved.
func (c *CLI) previewProject(root string) (domain.Project, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.Project{}, zerr.Wrap(err, "failed to get working directory")
		}
		return c.app.LoadProject(wd, ""), nil
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, "invalid root"), "root", root)
	}
	project := c.app.LoadProject(abs, abs)
	project.Root = abs
	return project, nil
}
