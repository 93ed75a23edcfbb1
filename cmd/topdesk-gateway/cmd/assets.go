package cmd

import (
	"github.com/fourkey/topdesk-gateway/pkg/topdesk"
	"github.com/spf13/cobra"
)

var assetTemplateID string
var assetFields []string
var assetFilter string
var assetPageStart int
var assetPageSize int

func init() {
	rootCmd.AddCommand(assetsCmd)
	assetsCmd.AddCommand(assetsListCmd)
	assetsCmd.AddCommand(assetsGetCmd)

	assetsListCmd.Flags().StringVar(&assetTemplateID, "template-id", "", "asset template to query")
	assetsListCmd.Flags().StringArrayVar(&assetFields, "field", nil, "field to include, repeatable")
	assetsListCmd.Flags().StringVar(&assetFilter, "filter", "", "OData-style filter expression")
	assetsListCmd.Flags().IntVar(&assetPageStart, "page-start", 0, "offset of the first asset")
	assetsListCmd.Flags().IntVar(&assetPageSize, "page-size", 0, "maximum number of assets")
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Work with TOPdesk assets",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		cobra.CheckErr(err)

		opts := &topdesk.ListAssetsOptions{
			TemplateID: assetTemplateID,
			Fields:     assetFields,
			Filter:     assetFilter,
		}
		if cmd.Flags().Changed("page-start") {
			opts.PageStart = topdesk.Int(assetPageStart)
		}
		if cmd.Flags().Changed("page-size") {
			opts.PageSize = topdesk.Int(assetPageSize)
		}

		assets, err := client.ListAssets(cmd.Context(), opts)
		cobra.CheckErr(err)
		printJSON(assets)
	},
}

var assetsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a single asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		cobra.CheckErr(err)

		asset, err := client.GetAsset(cmd.Context(), args[0])
		cobra.CheckErr(err)
		printJSON(asset)
	},
}
