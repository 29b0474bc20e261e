package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/degrootsam/shai-hulud-detector/detector/presenter"
	"github.com/degrootsam/shai-hulud-detector/detector/scanner"
	"github.com/degrootsam/shai-hulud-detector/internal/config"
)

var cliOnlyOpts = config.CliOnlyOptions{}

func setCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&cliOnlyOpts.ConfigPath, "config", "c", "", "application config file")

	setRootFlags(rootCmd.Flags())

	rootCmd.Flags().CountVarP(&cliOnlyOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	if err := bindRootConfigOptions(rootCmd.Flags()); err != nil {
		fmt.Printf("unable to bind CLI flags: %+v", err)
		os.Exit(1)
	}
}

func setRootFlags(flags *pflag.FlagSet) {
	// watch-list options
	flags.StringP(
		"watchlist", "w", "",
		"path to the watch-list file of package@version lines (required)",
	)

	// repository selection options
	flags.Bool(
		"include-forks", false,
		"also scan forked repositories",
	)
	flags.Bool(
		"include-archived", false,
		"also scan archived repositories",
	)
	flags.Int(
		"concurrency", scanner.DefaultConcurrency,
		"maximum number of SBOM fetches in flight at once",
	)

	// output & formatting options
	flags.StringP(
		"output", "o", presenter.JSONPresenter.String(),
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)
	flags.String(
		"file", "",
		"file to write the report output to (default is STDOUT)",
	)
	flags.Bool(
		"fail-on-match", false,
		"exit with a non-zero code when any watched package is discovered",
	)
	flags.BoolP(
		"quiet", "q", false,
		"suppress all logging output",
	)
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	for _, flag := range []string{
		"watchlist",
		"include-forks",
		"include-archived",
		"concurrency",
		"output",
		"file",
		"fail-on-match",
		"quiet",
	} {
		if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("unable to bind flag '%s': %w", flag, err)
		}
	}
	return nil
}
