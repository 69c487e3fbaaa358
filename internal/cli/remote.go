package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wmsconsole/wms-console/internal/domain"
	"github.com/wmsconsole/wms-console/internal/output"
	"github.com/wmsconsole/wms-console/internal/wmsapi"
)

func newResourcesCommand(*App) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the resource names accepted by list, get, delete and export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range wmsapi.ResourceNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newListCommand(a *App) *cobra.Command {
	var (
		params map[string]string
		page   int
		size   int
	)
	cmd := &cobra.Command{
		Use:     "list <resource>",
		Short:   "List one page of a resource",
		Example: "  wmsctl list warehouse --page 2 --size 20 --param warehouseName=Shanghai",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client().Resource(args[0])
			if err != nil {
				return err
			}
			query := pageQuery(params, page, size)
			total, rows, err := res.ListRaw(cmd.Context(), query)
			if err != nil {
				return err
			}
			t, err := output.NewTable(res.Name(), total, rows)
			if err != nil {
				return err
			}
			return a.render(cmd, t)
		},
	}
	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 0, "page size")
	return cmd
}

func pageQuery(params map[string]string, page, size int) map[string]string {
	query := make(map[string]string, len(params)+2)
	for k, v := range params {
		query[k] = v
	}
	if page > 0 {
		query["current"] = fmt.Sprint(page)
	}
	if size > 0 {
		query["pageSize"] = fmt.Sprint(size)
	}
	return query
}

func newGetCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client().Resource(args[0])
			if err != nil {
				return err
			}
			rows, err := res.GetRaw(cmd.Context(), domain.ID(args[1]))
			if err != nil {
				return err
			}
			t, err := output.NewTable(res.Name(), 0, rows)
			if err != nil {
				return err
			}
			return a.render(cmd, t)
		},
	}
}

func newDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <resource> <id>...",
		Short: "Delete records by id",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client().Resource(args[0])
			if err != nil {
				return err
			}
			var ids []domain.ID
			for _, arg := range args[1:] {
				for _, id := range strings.Split(arg, ",") {
					ids = append(ids, domain.ID(strings.TrimSpace(id)))
				}
			}
			if err := res.Delete(cmd.Context(), ids...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d %s record(s)\n", len(ids), res.Name())
			return nil
		},
	}
}

func newExportCommand(a *App) *cobra.Command {
	var (
		params map[string]string
		path   string
	)
	cmd := &cobra.Command{
		Use:   "export <resource>",
		Short: "Download the spreadsheet export of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client().Resource(args[0])
			if err != nil {
				return err
			}
			if path == "" {
				path = output.TimestampedName(res.Name(), "xlsx")
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			n, err := res.ExportRaw(cmd.Context(), params, f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(path)
				return err
			}
			a.logger.Info("export saved", zap.String("resource", res.Name()), zap.String("path", path), zap.Int64("bytes", n))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", n, path)
			return nil
		},
	}
	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "filter as key=value (repeatable)")
	cmd.Flags().StringVarP(&path, "output", "o", "", "destination file (default <resource>_<millis>.xlsx)")
	return cmd
}
