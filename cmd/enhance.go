package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cveillard/radiant/imp"
	"github.com/cveillard/radiant/models"
	"github.com/cveillard/radiant/session"
)

var (
	methodName string
	gammaValue float64
	outputPath string
	reportPath string
)

// enhanceCmd represents the enhance command
var enhanceCmd = &cobra.Command{
	Use:   "enhance IMAGE",
	Short: "Enhance a grayscale image and save the result.",
	Long: `Load an image, convert it to grayscale, apply the selected
enhancement method and save the enhanced image. Supported methods:

  equalize         histogram equalization (no parameters)
  gamma            power-law correction (-g, gamma > 0)
  gamma-contrast   gamma correction followed by a contrast stretch`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		method, err := imp.ParseMethod(methodName)
		if err != nil {
			log.Fatal(err)
		}

		sess := session.New()
		if err := sess.Load(args[0]); err != nil {
			log.Fatal(err)
		}
		if err := sess.Select(method, gammaValue); err != nil {
			log.Fatal(err)
		}
		if err := sess.Apply(); err != nil {
			log.Fatal(err)
		}

		out := outputPath
		if out == "" {
			out = defaultOutput(args[0], method)
		}
		if err := sess.SaveImage(out); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Saved", out)

		if reportPath != "" {
			if err := sess.WriteReport(reportPath); err != nil {
				log.Fatal(err)
			}
			fmt.Println("Report saved:", reportPath)
		}

		run := &models.Run{
			Source: args[0],
			Method: method.String(),
			Output: out,
			Report: reportPath,
		}
		if method.UsesGamma() {
			run.Gamma = gammaValue
		}
		logRun(run)
	},
}

func defaultOutput(input string, method imp.Method) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s_%s.png", stem, method.Slug())
}

func init() {
	rootCmd.AddCommand(enhanceCmd)

	enhanceCmd.Flags().StringVarP(&methodName, "method", "m", "equalize", "enhancement method")
	enhanceCmd.Flags().Float64VarP(&gammaValue, "gamma", "g", imp.DefaultGamma, "gamma value for gamma-based methods")
	enhanceCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output image path (default is <input>_<method>.png)")
	enhanceCmd.Flags().StringVar(&reportPath, "report", "", "also write a PDF report to this path")
}
