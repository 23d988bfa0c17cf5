package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paylens-dev/paylens/internal/products"
)

func newCheckCommand() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Data quality checks",
	}
	checkCmd.AddCommand(newCheckOwnersCommand())
	return checkCmd
}

func newCheckOwnersCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "owners",
		Short: "Verify every product is owned by exactly one team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runCheckOwners(cmd.OutOrStdout(), absDir)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")

	return cmd
}

func runCheckOwners(w io.Writer, root string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	catalog, err := products.Load(datasetPath(root, cfg.Datasets.Products))
	if err != nil {
		return err
	}

	errs := catalog.Validate()
	if len(errs) == 0 {
		fmt.Fprintf(w, "OK: %d products, one team each\n", len(catalog.All()))
		return nil
	}

	for _, e := range errs {
		fmt.Fprintln(w, e.Error())
	}
	return fmt.Errorf("%d ownership violations", len(errs))
}
