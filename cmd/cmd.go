// Package cmd implements the raylib command line: it reports which native
// entry points a raylib build exports and how the Go mirrors of its structs
// are laid out.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jmorganca/raylib/envconfig"
	"github.com/jmorganca/raylib/internal/native"
	"github.com/jmorganca/raylib/logutil"
	"github.com/jmorganca/raylib/raylib"
	"github.com/jmorganca/raylib/rlgl"
)

var errMissingSymbols = errors.New("native library is missing symbols")

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	return table
}

func symbolsHandler(cmd *cobra.Command, args []string) error {
	library, err := cmd.Flags().GetString("library")
	if err != nil {
		return err
	}

	if library != "" {
		err = raylib.LoadFrom(library)
	} else {
		err = raylib.Load()
	}
	if err != nil {
		return err
	}
	defer raylib.Unload()

	missing, err := cmd.Flags().GetBool("missing")
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", raylib.Path())
	return writeReports(cmd.OutOrStdout(), raylib.Reports(), missing)
}

// writeReports prints one row per bound table, then with listMissing one row
// per missing symbol. It returns errMissingSymbols if any table is
// incomplete.
func writeReports(w io.Writer, reports []native.Report, listMissing bool) error {
	var data [][]string
	var absent [][]string
	for _, r := range reports {
		data = append(data, []string{
			r.Table,
			strconv.Itoa(r.Bound + len(r.Missing)),
			strconv.Itoa(r.Bound),
			strconv.Itoa(len(r.Missing)),
		})
		for _, name := range r.Missing {
			absent = append(absent, []string{r.Table, name})
		}
	}

	table := newTable(w, "TABLE", "SYMBOLS", "BOUND", "MISSING")
	table.AppendBulk(data)
	table.Render()

	if len(absent) == 0 {
		return nil
	}

	if listMissing {
		fmt.Fprintln(w)
		table := newTable(w, "TABLE", "SYMBOL")
		table.AppendBulk(absent)
		table.Render()
	}

	return fmt.Errorf("%w: %d", errMissingSymbols, len(absent))
}

func allLayouts() []native.Layout {
	return append(raylib.Layouts(), rlgl.Layouts()...)
}

func layoutHandler(cmd *cobra.Command, args []string) error {
	layouts := allLayouts()
	if len(args) > 0 {
		var selected []native.Layout
		for _, name := range args {
			i := slices.IndexFunc(layouts, func(l native.Layout) bool {
				return strings.EqualFold(l.Name, name)
			})
			if i < 0 {
				return fmt.Errorf("unknown struct %q", name)
			}
			selected = append(selected, layouts[i])
		}
		layouts = selected
	}

	w := cmd.OutOrStdout()
	for i, l := range layouts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s    size %d    align %d\n", l.Name, l.Size, l.Align)

		var data [][]string
		for _, f := range l.Fields {
			data = append(data, []string{f.Name, strconv.Itoa(int(f.Offset)), strconv.Itoa(int(f.Size))})
		}

		table := newTable(w, "FIELD", "OFFSET", "SIZE")
		table.AppendBulk(data)
		table.Render()
	}

	return nil
}

func envHandler(cmd *cobra.Command, args []string) error {
	vars := envconfig.AsMap()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var data [][]string
	for _, k := range keys {
		data = append(data, []string{k, fmt.Sprintf("%v", vars[k].Value), vars[k].Description})
	}

	table := newTable(cmd.OutOrStdout(), "NAME", "VALUE", "DESCRIPTION")
	table.AppendBulk(data)
	table.Render()
	return nil
}

func configHandler(cmd *cobra.Command, args []string) error {
	example, err := cmd.Flags().GetBool("example")
	if err != nil {
		return err
	}

	if example {
		fmt.Fprint(cmd.OutOrStdout(), envconfig.GenerateExampleConfig())
		return nil
	}

	path := envconfig.ConfigPath()
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no config file found, searched:")
		for _, p := range envconfig.GetConfigPaths() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func versionHandler(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "raylib bindings for raylib %s\n", raylib.VersionString)
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "raylib",
		Short: "Inspect raylib native bindings",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			slog.SetDefault(logutil.NewLogger(os.Stderr, logutil.Level(envconfig.Debug, envconfig.Trace)))
		},
	}

	cobra.EnableCommandSorting = false

	symbolsCmd := &cobra.Command{
		Use:   "symbols",
		Short: "Load raylib and report bound and missing symbols",
		Args:  cobra.NoArgs,
		RunE:  symbolsHandler,
	}
	symbolsCmd.Flags().String("library", "", "Path to the raylib shared library (overrides RAYLIB_LIBRARY)")
	symbolsCmd.Flags().Bool("missing", false, "List every missing symbol")

	layoutCmd := &cobra.Command{
		Use:   "layout [STRUCT...]",
		Short: "Show the memory layout of the shared structs",
		RunE:  layoutHandler,
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show environment settings",
		Args:  cobra.NoArgs,
		RunE:  envHandler,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the config file in use",
		Args:  cobra.NoArgs,
		RunE:  configHandler,
	}
	configCmd.Flags().Bool("example", false, "Print an example config file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the raylib version the bindings target",
		Args:  cobra.NoArgs,
		Run:   versionHandler,
	}

	rootCmd.AddCommand(
		symbolsCmd,
		layoutCmd,
		envCmd,
		configCmd,
		versionCmd,
	)

	return rootCmd
}
