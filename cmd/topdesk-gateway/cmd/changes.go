package cmd

import (
	"github.com/fourkey/topdesk-gateway/pkg/topdesk"
	"github.com/spf13/cobra"
)

var changeFields string

func init() {
	rootCmd.AddCommand(changesCmd)
	changesCmd.AddCommand(changesListCmd)
	changesCmd.AddCommand(changesGetCmd)

	changesCmd.PersistentFlags().StringVar(&changeFields, "fields", "", `field set to return, e.g. "all"`)
}

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Work with TOPdesk operator changes",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var changesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List operator changes",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		cobra.CheckErr(err)

		changes, err := client.ListChanges(cmd.Context(), &topdesk.ListChangesOptions{Fields: changeFields})
		cobra.CheckErr(err)
		printJSON(changes)
	},
}

var changesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a single operator change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		cobra.CheckErr(err)

		change, err := client.GetChange(cmd.Context(), args[0], &topdesk.GetChangeOptions{Fields: changeFields})
		cobra.CheckErr(err)
		printJSON(change)
	},
}
