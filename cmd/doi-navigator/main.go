// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doi-navigator CLI: batch DOI
// metadata resolution with journal impact and indexing enrichment.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doi-navigator/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds private settings loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the doi-navigator CLI.
var rootCmd = &cobra.Command{
	Use:   "doi-navigator",
	Short: "Resolve DOI metadata and enrich it with journal indexing data",
	Long: `doi-navigator resolves batches of DOIs to publication metadata through
Crossref with doi.org content negotiation as fallback, then enriches each
record against two journal reference tables: an impact/quartile workbook
and an indexed-titles workbook.

Results come out as a terminal table, JSON, YAML, or an Excel workbook.
Licensed reference table URLs and a contact email belong in .secrets/
(keys: jcr-url, scopus-url, contact-email) rather than in config files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doi-navigator.yaml or ~/.config/doi-navigator/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doi-navigator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doi-navigator"))
		}
	}

	viper.SetEnvPrefix("DOI_NAVIGATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
