package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wmsconsole/wms-console/internal/output"
	"github.com/wmsconsole/wms-console/pkg/decimal"
	"github.com/wmsconsole/wms-console/pkg/doccode"
)

func newCodeCommand(a *App) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "code [kind]",
		Short: "Print a dated document code (MMDD + 4 random digits)",
		Long: fmt.Sprintf("Print a dated document code. With a kind (%v) the code carries the\n"+
			"document-number prefix used on new order forms.", doccode.KindNames()),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			next := a.codes.Generate
			if len(args) == 1 {
				kind, err := doccode.ParseKind(args[0])
				if err != nil {
					return err
				}
				next = func() string { return a.codes.Number(kind) }
			}
			for range count {
				fmt.Fprintln(cmd.OutOrStdout(), next())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of codes to print")
	return cmd
}

func newSubCommand(*App) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <num1> <num2>",
		Short: "Subtract two decimals without floating-point drift",
		Example: "  wmsctl sub 0.3 0.1\n" +
			"  wmsctl sub -- -1.5 0.25",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num1, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid num1 %q: %w", args[0], err)
			}
			num2, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid num2 %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(decimal.Sub(num1, num2), 'f', -1, 64))
			return nil
		},
	}
}

func newFooterCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "footer",
		Short: "Show the configured page footer links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			footer := a.cfg.Console.Footer
			t, err := output.NewTable("footer", 0, footer.Links)
			if err != nil {
				return err
			}
			if err := a.render(cmd, t); err != nil {
				return err
			}
			if footer.Copyright != "" && output.NormalizeFormatName(a.cfg.Output.Format) == "table" {
				fmt.Fprintf(cmd.OutOrStdout(), "© %s\n", footer.Copyright)
			}
			return nil
		},
	}
}

func newTopBarCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topbar",
		Short: "Show the configured top-bar widgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := output.NewTable("topbar", 0, a.cfg.Console.TopBar.Widgets)
			if err != nil {
				return err
			}
			return a.render(cmd, t)
		},
	}
}
