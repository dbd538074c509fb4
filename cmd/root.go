package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "radiant",
	Short: "Grayscale X-ray enhancement toolkit",
	Long: `A command line tool that enhances grayscale medical images using
histogram equalization, gamma correction or gamma + contrast stretching,
and assembles before/after PDF reports with histograms.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.radiant.yaml)")
	rootCmd.PersistentFlags().String("db", "radiant.sqlite", "run history database (default is ./radiant.sqlite)")
	rootCmd.PersistentFlags().String("outdir", "results", "default directory for generated reports")
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("outdir", rootCmd.PersistentFlags().Lookup("outdir"))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".radiant" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".radiant")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("RADIANT")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
