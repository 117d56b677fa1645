package cli

import (
	"github.com/spf13/cobra"

	apierr "github.com/matzehuels/graphml/pkg/errors"
	gio "github.com/matzehuels/graphml/pkg/io"
	"github.com/matzehuels/graphml/pkg/render/nodelink"
)

// previewCommand creates the preview command for node-link diagrams.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output   string
		dot      bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a graph file as a node-link diagram",
		Long: `Render a graph file as an SVG node-link diagram, or as Graphviz DOT source
with --dot. Rendering runs in process; no Graphviz installation is needed.`,
		Example: `  graphml preview deps.json -o deps.svg
  graphml preview deps.toml --dot | dot -Tpng > deps.png`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: graphFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			if output != "" && output != "-" {
				if err := apierr.ValidateOutputPath(output); err != nil {
					return err
				}
			}

			g, err := gio.ImportFile(args[0])
			if err != nil {
				return apierr.Classify(err, "preview %s", args[0])
			}
			src := nodelink.ToDOT(g, nodelink.Options{Detailed: detailed})

			data := []byte(src)
			if !dot {
				data, err = nodelink.RenderSVG(ctx, src)
				if err != nil {
					return apierr.Wrap(apierr.ErrCodeInternal, err, "render %s", args[0])
				}
			}
			if err := writeOutput(cmd.OutOrStdout(), output, data); err != nil {
				return err
			}
			prog.done("Rendered %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

			if output != "" && output != "-" {
				printSuccess(cmd.ErrOrStderr(), "Rendered %s", args[0])
				printFile(cmd.ErrOrStderr(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&dot, "dot", false, "write Graphviz DOT source instead of SVG")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include metadata in node labels")

	return cmd
}
