package cmd

import (
	"github.com/fourkey/topdesk-gateway/pkg/topdesk"
	"github.com/spf13/cobra"
)

var incidentPageStart int
var incidentPageSize int

func init() {
	rootCmd.AddCommand(incidentsCmd)
	incidentsCmd.AddCommand(incidentsListCmd)
	incidentsCmd.AddCommand(incidentsGetCmd)

	incidentsListCmd.Flags().IntVar(&incidentPageStart, "page-start", 0, "offset of the first incident")
	incidentsListCmd.Flags().IntVar(&incidentPageSize, "page-size", 0, "maximum number of incidents")
}

var incidentsCmd = &cobra.Command{
	Use:   "incidents",
	Short: "Work with TOPdesk incidents",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var incidentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List incidents",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		cobra.CheckErr(err)

		opts := &topdesk.ListIncidentsOptions{}
		if cmd.Flags().Changed("page-start") {
			opts.PageStart = topdesk.Int(incidentPageStart)
		}
		if cmd.Flags().Changed("page-size") {
			opts.PageSize = topdesk.Int(incidentPageSize)
		}

		incidents, err := client.ListIncidents(cmd.Context(), opts)
		cobra.CheckErr(err)
		printJSON(incidents)
	},
}

var incidentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a single incident",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		cobra.CheckErr(err)

		incident, err := client.GetIncident(cmd.Context(), args[0])
		cobra.CheckErr(err)
		printJSON(incident)
	},
}
