package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/proxnet/cmd/proxnet/internal/config"
	"github.com/katalvlaran/proxnet/edgedist"
	"github.com/katalvlaran/proxnet/table"
)

type edgesFlags struct {
	input  string
	output string

	threshold   float64
	id          string
	coords      []string
	timegroup   string
	noTimegroup bool
	splitBy     []string

	returnDist   bool
	fillNA       bool
	spatialIndex bool
	strict       bool
	parallelism  int
	format       string
	delimiter    string
}

func newEdgesCmd(root *rootOptions) *cobra.Command {
	f := &edgesFlags{}
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "Write the proximity edge list of a relocation CSV",
		Long: `Read relocations from a CSV file (or stdin), pair individuals within
the same time group and split-by groups whose distance is strictly below the
threshold, and write the edge list as CSV or as an aligned table.

The output has columns ID1, ID2, the grouping columns and, with
--return-dist, distance. Both directions of every pair are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, root, f)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runEdges(cmd, cfg, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "-", "relocation CSV file, - for stdin")
	fs.StringVarP(&f.output, "output", "o", "-", "output file, - for stdout")
	fs.Float64VarP(&f.threshold, "threshold", "t", 0, "exclusive distance threshold, in coordinate units")
	fs.StringVar(&f.id, "id", "", "individual identifier column")
	fs.StringSliceVar(&f.coords, "coords", nil, "x and y coordinate columns, e.g. X,Y")
	fs.StringVar(&f.timegroup, "timegroup", "", "time group column")
	fs.BoolVar(&f.noTimegroup, "no-timegroup", false, "treat all rows as one time group")
	fs.StringSliceVar(&f.splitBy, "split-by", nil, "extra grouping columns")
	fs.BoolVar(&f.returnDist, "return-dist", false, "add a distance column")
	fs.BoolVar(&f.fillNA, "fill-na", true, "keep individuals without a partner as rows with ID2 NA")
	fs.BoolVar(&f.spatialIndex, "spatial-index", false, "use the grid index instead of the dense distance matrix")
	fs.BoolVar(&f.strict, "strict-coordinates", false, "reject rows with missing or non-finite coordinates")
	fs.IntVar(&f.parallelism, "parallelism", 1, "groups matched concurrently, 0 for GOMAXPROCS")
	fs.StringVarP(&f.format, "format", "f", config.FormatCSV, "output format: csv or table")
	fs.StringVar(&f.delimiter, "delimiter", ",", "CSV field delimiter")

	return cmd
}

// applyFlags overlays the flags given on the command line onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, root *rootOptions, f *edgesFlags) {
	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = root.logLevel
	}
	if changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if changed("id") {
		cfg.ID = f.id
	}
	if changed("coords") {
		cfg.Coords = f.coords
	}
	if changed("timegroup") {
		cfg.Timegroup = f.timegroup
	}
	if changed("no-timegroup") {
		cfg.NoTimegroup = f.noTimegroup
	}
	if changed("split-by") {
		cfg.SplitBy = f.splitBy
	}
	if changed("return-dist") {
		cfg.ReturnDist = f.returnDist
	}
	if changed("fill-na") {
		cfg.FillNA = f.fillNA
	}
	if changed("spatial-index") {
		cfg.SpatialIndex = f.spatialIndex
	}
	if changed("strict-coordinates") {
		cfg.StrictCoordinates = f.strict
	}
	if changed("parallelism") {
		cfg.Parallelism = f.parallelism
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("delimiter") {
		cfg.Delimiter = f.delimiter
	}
}

// edgeOptions maps cfg onto edgedist options. A zero threshold or an empty
// timegroup stays unset so the library reports it as missing.
func edgeOptions(cmd *cobra.Command, cfg *config.Config, log *edgedist.Logger) []edgedist.Option {
	opts := []edgedist.Option{
		edgedist.WithID(cfg.ID),
		edgedist.WithCoords(cfg.Coords...),
		edgedist.WithSplitBy(cfg.SplitBy...),
		edgedist.WithReturnDist(cfg.ReturnDist),
		edgedist.WithFillNA(cfg.FillNA),
		edgedist.WithSpatialIndex(cfg.SpatialIndex),
		edgedist.WithStrictCoordinates(cfg.StrictCoordinates),
		edgedist.WithParallelism(cfg.Parallelism),
		edgedist.WithLogger(log),
	}
	if cfg.Threshold != 0 || cmd.Flags().Changed("threshold") {
		opts = append(opts, edgedist.WithThreshold(cfg.Threshold))
	}
	switch {
	case cfg.NoTimegroup:
		opts = append(opts, edgedist.WithoutTimegroup())
	case cfg.Timegroup != "":
		opts = append(opts, edgedist.WithTimegroup(cfg.Timegroup))
	}
	return opts
}

func runEdges(cmd *cobra.Command, cfg *config.Config, f *edgesFlags) error {
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	log := edgedist.NewTextLogger(cmd.ErrOrStderr(), lvl)
	delim := table.WithDelimiter(cfg.DelimiterRune())
	// ids are labels: "001" and "1" are different individuals
	idKind := table.WithColumnKind(cfg.ID, table.KindString)

	in, err := openInput(cmd, f.input)
	if err != nil {
		return err
	}
	defer in.Close()

	relocs, err := table.ReadCSV(in, delim, idKind)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.input, err)
	}

	res, err := edgedist.EdgeDist(relocs, edgeOptions(cmd, cfg, log)...)
	if err != nil {
		return err
	}

	out, err := openOutput(cmd, f.output)
	if err != nil {
		return err
	}
	if err := render(out, res.Table, cfg.Format, delim); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return fh, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return fh, nil
}
