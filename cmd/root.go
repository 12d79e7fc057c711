/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/internal/iofs"
	"github.com/gnames/gnkore/internal/iologger"
	gnkore "github.com/gnames/gnkore/pkg"
	"github.com/gnames/gnkore/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	envFile string
	cfg     *config.Config
)

// getRootCmd returns the base command when called without any
// subcommands. Each call returns a new instance.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gnkore.Version, gnkore.Build),
		Use:   "gnkore",
		Short: "GNkore collects genome assembly metadata for BioProjects",
		Long: `GNkore collects genome assembly metadata for a list of BioProject
accessions and prepares it for genome notes.

For every BioProject it:
  - Reads the project and its child projects from ENA
  - Gets the taxonomic lineage from NCBI Taxonomy
  - Finds the species authority and vernacular name in GBIF
  - Finds assemblies, brings them to their latest revision
    and groups them by version into primary/alternate or
    haplotype pairs
  - Collects assembly statistics and the chromosome table
    from NCBI Datasets

NCBI credentials are read from ENTREZ_API and ENTREZ_EMAIL
environment variables, or from a .env file.

Configuration file is located at ~/.config/gnkore/config.yaml`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnkore version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnkore")

	rootCmd.PersistentFlags().StringVarP(
		&envFile, "env", "e", ".env",
		"file with environment variables",
	)

	rootCmd.AddCommand(getProcessCmd(), getValidateCmd())
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	logDir := config.LogDir(homeDir)
	if err = iologger.Init(logDir, defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Default .env file is optional, explicitly given one is not.
	envRequired := cmd.Flags().Changed("env")
	if err = iofs.LoadEnv(envFile, envRequired); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(logDir, cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg.API.EntrezAPIKey == "" {
		gn.Warn("NCBI API key is not set, NCBI requests will be throttled")
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"jobs", cfg.JobsNumber,
	)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// We bind environment variables manually so it is clear which of them
	// are allowed. They match the fields included in config.ToOptions().
	v.SetEnvPrefix("GNKORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// API configuration
	v.BindEnv("api.ena_portal_url", "GNKORE_API_ENA_PORTAL_URL")
	v.BindEnv("api.ena_browser_url", "GNKORE_API_ENA_BROWSER_URL")
	v.BindEnv("api.datasets_url", "GNKORE_API_DATASETS_URL")
	v.BindEnv("api.eutils_url", "GNKORE_API_EUTILS_URL")
	v.BindEnv("api.gbif_url", "GNKORE_API_GBIF_URL")
	v.BindEnv("api.entrez_api_key", "GNKORE_API_ENTREZ_API_KEY", "ENTREZ_API")
	v.BindEnv("api.entrez_email", "GNKORE_API_ENTREZ_EMAIL", "ENTREZ_EMAIL")
	v.BindEnv("api.timeout", "GNKORE_API_TIMEOUT")

	// Process configuration
	v.BindEnv("process.search_limit", "GNKORE_PROCESS_SEARCH_LIMIT")

	// Log configuration
	v.BindEnv("log.level", "GNKORE_LOG_LEVEL")
	v.BindEnv("log.format", "GNKORE_LOG_FORMAT")
	v.BindEnv("log.destination", "GNKORE_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNKORE_JOBS_NUMBER")

	v.AutomaticEnv()
}
