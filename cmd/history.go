package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cveillard/radiant/models"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past enhancement runs.",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		db.AutoMigrate(&models.Run{})
		runs, err := models.ListRuns(db)
		if err != nil {
			log.Fatal(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSOURCE\tMETHOD\tGAMMA\tOUTPUT\tREPORT")
		for _, run := range runs {
			gamma := "-"
			if run.Gamma > 0 {
				gamma = fmt.Sprintf("%.2f", run.Gamma)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				run.CreatedAt.Format("2006-01-02 15:04"),
				run.Source, run.Method, gamma, run.Output, run.Report)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
