package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mytheresa/product-categories/app/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The UI owns the terminal
		catalog, err := loadCatalog(cfg, zap.NewNop())
		if err != nil {
			return err
		}
		return browse.Run(cmd.Context(), catalog)
	},
}
