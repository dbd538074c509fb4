package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cveillard/radiant/imp"
	"github.com/cveillard/radiant/models"
	"github.com/cveillard/radiant/session"
)

var (
	reportMethods []string
	reportGamma   float64
	reportOutput  string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report IMAGE",
	Short: "Build a PDF enhancement report for an image.",
	Long: `Apply one or more enhancement methods to an image and assemble a
PDF report with one page per method, showing the original and enhanced
images side by side with their histograms.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		methods := make([]imp.Method, 0, len(reportMethods))
		if len(reportMethods) == 0 {
			methods = imp.Methods()
		}
		for _, name := range reportMethods {
			m, err := imp.ParseMethod(name)
			if err != nil {
				log.Fatal(err)
			}
			methods = append(methods, m)
		}

		sess := session.New()
		if err := sess.Load(args[0]); err != nil {
			log.Fatal(err)
		}
		for _, m := range methods {
			if err := sess.Select(m, reportGamma); err != nil {
				log.Fatal(err)
			}
			if err := sess.Apply(); err != nil {
				log.Fatal(err)
			}
		}

		out := reportOutput
		if out == "" {
			outdir := viper.GetString("outdir")
			if err := os.MkdirAll(outdir, 0o755); err != nil {
				log.Fatal(err)
			}
			out = filepath.Join(outdir, sess.Name()+"_report.pdf")
		}
		if err := sess.WriteReport(out); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Report saved:", out)

		for _, res := range sess.Results() {
			run := &models.Run{
				Source: args[0],
				Method: res.Method.String(),
				Report: out,
			}
			if res.Method.UsesGamma() {
				run.Gamma = res.Gamma
			}
			logRun(run)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringSliceVarP(&reportMethods, "method", "m", nil, "methods to include (default is all three)")
	reportCmd.Flags().Float64VarP(&reportGamma, "gamma", "g", imp.DefaultGamma, "gamma value for gamma-based methods")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "report path (default is <outdir>/<image>_report.pdf)")
}
