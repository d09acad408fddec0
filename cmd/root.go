package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexiusacademia/goseismic/internal/config"
	"github.com/alexiusacademia/goseismic/internal/seismic"
	"github.com/alexiusacademia/goseismic/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	envFile string

	appConfig *config.Config
	logger    = log.New(io.Discard, "goseismic: ", log.Ltime)
	engine    = seismic.NewEngine()
)

var rootCmd = &cobra.Command{
	Use:   "goseismic",
	Short: "Seismic Load Calculator (ASCE 7-05 ELF)",
	Long: `goseismic - Go Seismic Load Calculator

A CLI tool for the seismic design loads of buildings using the
Equivalent Lateral Force procedure of ASCE 7-05 Chapters 11 and 12.

This tool helps structural engineers compute:
  - Site coefficients, design spectral accelerations and SDC
  - Fundamental period and seismic response coefficient Cs
  - Base shear and its vertical distribution to stories
  - Allowable story drift and seismic load combinations
  - The design response spectrum (CSV, XLSX and plots)

Defaults may be set through GOSEISMIC_UNIT and GOSEISMIC_OUTPUT_DIR,
in the environment or in a .env file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetOutput(os.Stderr)
		}

		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return err
		}
		appConfig = cfg
		logger.Printf("config: unit=%s output-dir=%s", cfg.Unit, cfg.OutputDir)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goseismic v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Seismic Load Calculator                              ║")
		fmt.Printf("  ║   %s ©  %-*s║\n", version.Author, 52-len(version.Author), version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for seismic design loads of buildings using the")
		fmt.Println("  Equivalent Lateral Force procedure of ASCE 7-05.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Base shear and vertical force distribution")
		fmt.Println("    • Design response spectrum export (CSV, XLSX)")
		fmt.Println("    • Calculation memo (Markdown, PDF)")
		fmt.Println("    • Seismic load combinations with Ev, ρ and Ω0")
		fmt.Println()
		fmt.Println("  Use 'goseismic --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log file loading and export progress to stderr")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Load defaults from this .env file instead of ./.env")
}
