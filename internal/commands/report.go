package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paylens-dev/paylens/internal/classify"
	"github.com/paylens-dev/paylens/internal/payments"
	"github.com/paylens-dev/paylens/internal/products"
	"github.com/paylens-dev/paylens/internal/report"
	"github.com/paylens-dev/paylens/internal/transactions"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Run a report over the workspace datasets",
	}
	reportCmd.AddCommand(newReportSubcommand("groups", "Payment totals per payment group", runReportGroups))
	reportCmd.AddCommand(newReportSubcommand("sources", "Payment totals per source channel", runReportSources))
	reportCmd.AddCommand(newReportSubcommand("teams", "Payment totals per owning team", runReportTeams))
	reportCmd.AddCommand(newReportSubcommand("transactions", "Transaction summary per type label", runReportTransactions))
	return reportCmd
}

// reportFunc computes one report from a workspace root.
type reportFunc func(root string) (reportOutput, error)

func newReportSubcommand(name, short string, run reportFunc) *cobra.Command {
	var repoDir string
	var export bool
	var commit bool

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runReport(cmd.OutOrStdout(), absDir, run, export, commit)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&export, "export", false, "write the report to exports/ and the run log")
	cmd.Flags().BoolVar(&commit, "commit", false, "commit the export even if auto_commit is off")

	return cmd
}

func runReport(w io.Writer, root string, run reportFunc, export, commit bool) error {
	out, err := run(root)
	if err != nil {
		return err
	}
	if err := out.print(w); err != nil {
		return err
	}
	if export {
		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}
		if err := out.export(root, cfg, commit); err != nil {
			return err
		}
		fmt.Fprintf(w, "Exported exports/%s.csv\n", out.Name)
	}
	return nil
}

func runReportGroups(root string) (reportOutput, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return reportOutput{}, err
	}

	pay, err := payments.Load(datasetPath(root, cfg.Datasets.Payments))
	if err != nil {
		return reportOutput{}, err
	}

	rows := report.Groups(pay.All())
	share := report.RefundShare(pay.All())

	out := reportOutput{
		Name:     "groups",
		Header:   []string{"payment_group", "payments", "total"},
		RowsRead: len(pay.All()),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, []string{string(r.Group), strconv.Itoa(r.Count), r.Total.StringFixed(2)})
	}
	out.Footer = append(out.Footer, fmt.Sprintf("Refund share: %s%%", share.StringFixed(2)))
	if pay.Dropped() > 0 {
		out.Footer = append(out.Footer, fmt.Sprintf("Dropped %d duplicate rows", pay.Dropped()))
	}
	return out, nil
}

func runReportSources(root string) (reportOutput, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return reportOutput{}, err
	}

	pay, err := payments.Load(datasetPath(root, cfg.Datasets.Payments))
	if err != nil {
		return reportOutput{}, err
	}

	rows := report.Sources(pay.All())
	if limit := cfg.Reports.TopSources; limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	out := reportOutput{
		Name:     "sources",
		Header:   []string{"source_id", "payments", "total"},
		RowsRead: len(pay.All()),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, []string{r.SourceID, strconv.Itoa(r.Count), r.Total.StringFixed(2)})
	}
	return out, nil
}

func runReportTeams(root string) (reportOutput, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return reportOutput{}, err
	}

	pay, err := payments.Load(datasetPath(root, cfg.Datasets.Payments))
	if err != nil {
		return reportOutput{}, err
	}
	catalog, err := products.Load(datasetPath(root, cfg.Datasets.Products))
	if err != nil {
		return reportOutput{}, err
	}

	rows := report.Teams(pay.All(), catalog)

	out := reportOutput{
		Name:     "teams",
		Header:   []string{"team_own", "payments", "total"},
		RowsRead: len(pay.All()),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, []string{r.Team, strconv.Itoa(r.Count), r.Total.StringFixed(2)})
	}
	return out, nil
}

func runReportTransactions(root string) (reportOutput, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return reportOutput{}, err
	}

	txns, err := transactions.Load(datasetPath(root, cfg.Datasets.Transactions))
	if err != nil {
		return reportOutput{}, err
	}

	summary := report.Transactions(txns.All(), classify.New())

	out := reportOutput{
		Name:     "transactions",
		Header:   []string{"transaction_type", "transactions", "total", "senders", "receivers"},
		RowsRead: len(txns.All()),
	}
	for _, r := range summary.Rows {
		out.Rows = append(out.Rows, []string{
			r.Label,
			strconv.Itoa(r.Transactions),
			r.Total.StringFixed(2),
			strconv.Itoa(r.Senders),
			strconv.Itoa(r.Receivers),
		})
	}
	if summary.Invalid > 0 {
		out.Footer = append(out.Footer, fmt.Sprintf("Excluded %d invalid transactions", summary.Invalid))
	}
	return out, nil
}
