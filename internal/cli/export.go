package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphml/pkg/cache"
	apierr "github.com/matzehuels/graphml/pkg/errors"
	gio "github.com/matzehuels/graphml/pkg/io"
	"github.com/matzehuels/graphml/pkg/observability"
)

const hookSource = "cli"

// exportCacheTTL bounds how long the CLI keeps rendered documents.
const exportCacheTTL = 7 * 24 * time.Hour

// exportOpts holds the flags of the export command.
type exportOpts struct {
	output      string
	pretty      bool
	nodeWeights string
	edgeWeights string
	noCache     bool
}

// exportCommand creates the export command for converting graph files.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert a graph file to GraphML",
		Long: `Convert a JSON or TOML graph file to a GraphML document.

Node and edge weights are exported as <data> elements when an exporter is
selected:

  none     no attributes (default)
  display  one "weight" attribute with the label, or the node id
  debug    one "weight" attribute with the Go representation of the element
  attrs    "id", "label" and every meta key as separate attributes`,
		Example: `  # Write to stdout
  graphml export deps.json

  # Indented, with labels on nodes and edges
  graphml export deps.json -o deps.graphml --pretty --node-weights display --edge-weights display`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: graphFileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyExportConfig(cmd, &opts)
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the document")
	cmd.Flags().StringVar(&opts.nodeWeights, "node-weights", "", "node exporter: "+strings.Join(gio.ExporterNames, ", "))
	cmd.Flags().StringVar(&opts.edgeWeights, "edge-weights", "", "edge exporter: "+strings.Join(gio.ExporterNames, ", "))
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the export cache")
	_ = cmd.RegisterFlagCompletionFunc("node-weights", completeExporters)
	_ = cmd.RegisterFlagCompletionFunc("edge-weights", completeExporters)

	return cmd
}

// applyExportConfig fills flags that were not set on the command line from
// the config file.
func (c *CLI) applyExportConfig(cmd *cobra.Command, opts *exportOpts) {
	flags := cmd.Flags()
	if !flags.Changed("pretty") {
		opts.pretty = c.config.Pretty
	}
	if !flags.Changed("node-weights") {
		opts.nodeWeights = c.config.NodeWeights
	}
	if !flags.Changed("edge-weights") {
		opts.edgeWeights = c.config.EdgeWeights
	}
}

func (c *CLI) runExport(ctx context.Context, stdout, stderr io.Writer, input string, opts exportOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if err := apierr.ValidateExporterName(opts.nodeWeights); err != nil {
		return err
	}
	if err := apierr.ValidateExporterName(opts.edgeWeights); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		if err := apierr.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	format, err := gio.FormatFromPath(input)
	if err != nil {
		return apierr.Classify(err, "export %s", input)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return apierr.Classify(err, "read %s", input)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return apierr.Wrap(apierr.ErrCodeInternal, err, "open cache")
	}
	defer store.Close()

	key := cache.ArtifactKey(data, cache.ArtifactOpts{
		Format:      format,
		Pretty:      opts.pretty,
		NodeWeights: opts.nodeWeights,
		EdgeWeights: opts.edgeWeights,
	})
	logger.Debug("export", "input", input, "format", format, "key", key)

	doc, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}

	var stats observability.ExportStats
	if cached {
		observability.Cache().OnCacheHit(ctx, hookSource)
	} else {
		observability.Cache().OnCacheMiss(ctx, hookSource)
		doc, stats, err = renderGraphML(ctx, data, format, opts)
		if err != nil {
			return apierr.Classify(err, "load %s", input)
		}
		if err := store.Set(ctx, key, doc, exportCacheTTL); err != nil {
			logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, hookSource, len(doc))
		}
	}

	if err := writeOutput(stdout, opts.output, doc); err != nil {
		return err
	}
	prog.done("Exported %s", filepath.Base(input))

	if opts.output != "" && opts.output != "-" {
		printSuccess(stderr, "Exported %s", input)
		printFile(stderr, opts.output)
		printStats(stderr, stats.Nodes, stats.Edges, bytes.Count(doc, []byte("<key ")), cached)
		if filepath.Ext(opts.output) != ".graphml" {
			printWarning(stderr, "output file does not end in .graphml; some tools detect the format by extension")
		}
	}
	return nil
}

// renderGraphML decodes a graph file and encodes it, reporting to the
// export hooks.
func renderGraphML(ctx context.Context, data []byte, format string, opts exportOpts) (doc []byte, stats observability.ExportStats, err error) {
	hooks := observability.Export()
	hooks.OnExportStart(ctx, hookSource)
	start := time.Now()
	defer func() {
		hooks.OnExportComplete(ctx, hookSource, stats, time.Since(start), err)
	}()

	g, err := gio.Read(bytes.NewReader(data), format)
	if err != nil {
		return nil, stats, err
	}

	var buf bytes.Buffer
	if err := gio.WriteGraphML(g, &buf, gio.Options{
		Pretty:      opts.pretty,
		NodeWeights: opts.nodeWeights,
		EdgeWeights: opts.edgeWeights,
	}); err != nil {
		return nil, stats, err
	}
	stats = observability.ExportStats{Nodes: g.NodeCount(), Edges: g.EdgeCount(), Bytes: buf.Len()}
	return buf.Bytes(), stats, nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return apierr.Wrap(apierr.ErrCodeSinkFailure, err, "write stdout")
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apierr.Wrap(apierr.ErrCodeSinkFailure, err, "write %s", path)
	}
	return nil
}

