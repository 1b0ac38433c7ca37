// Package commands implements the traycalc command line interface.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/piwi3910/TrayCalc/internal/logging"
	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/piwi3910/TrayCalc/internal/project"
)

// ErrOverloaded is returned by calc when the tray fails a limit. Execute
// maps it to exit code 2.
var ErrOverloaded = errors.New("tray exceeds its structural or fill limit")

// rootOptions holds the persistent flags and what they resolve to.
type rootOptions struct {
	cfgFile  string
	noColor  bool
	verbose  bool
	jsonLogs bool

	v      *viper.Viper
	config model.AppConfig
	logger *slog.Logger
}

// NewRootCmd builds the command tree. Each call gets its own flag and
// config state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	root := &cobra.Command{
		Use:   "traycalc",
		Short: "Cable tray loading and fill calculator",
		Long: `traycalc checks a cable tray against its allowable load and
recommended area fill, ranks catalogue trays for a cable list and
exports calculation reports.

Working sets are JSON or YAML files holding one tray and its cables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			opts.logger = logging.New(logging.Options{
				Verbose: opts.verbose,
				JSON:    opts.jsonLogs,
				Writer:  cmd.ErrOrStderr(),
			})
			return opts.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default ~/.traycalc/config.yaml, then config.json)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable ANSI color output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "write logs as JSON")
	flags.Float64("height-ratio", model.DefaultEffectiveFillRatioForHeight, "usable share of the tray side height (0-1)")
	flags.Float64("near-limit", model.DefaultNearLimitPercent, "percentage of a limit above which a value is flagged as near")

	_ = opts.v.BindPFlag("effective_fill_ratio_for_height", flags.Lookup("height-ratio"))
	_ = opts.v.BindPFlag("near_limit_percent", flags.Lookup("near-limit"))

	root.AddCommand(
		newCalcCmd(opts),
		newCatalogueCmd(opts),
		newSuggestCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
	)
	return root
}

// Execute runs the CLI and exits with 1 on error, 2 on an overloaded tray.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if errors.Is(err, ErrOverloaded) {
			os.Exit(2)
		}
		fmt.Fprintln(root.ErrOrStderr(), color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// defaultConfigFile returns ~/.traycalc/config.yaml, or the desktop app's
// config.json when no YAML file exists. It returns "" when neither exists.
func defaultConfigFile() string {
	for _, path := range []string{
		filepath.Join(project.DefaultConfigDir(), "config.yaml"),
		project.DefaultConfigPath(),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// initConfig layers defaults, the config file, TRAYCALC_* environment
// variables and flags into opts.config.
func (o *rootOptions) initConfig() error {
	v := o.v
	defaults := model.DefaultAppConfig()
	v.SetDefault("effective_fill_ratio_for_height", defaults.EffectiveFillRatioForHeight)
	v.SetDefault("near_limit_percent", defaults.NearLimitPercent)
	v.SetDefault("default_tray", defaults.DefaultTray)
	v.SetDefault("report_title", defaults.ReportTitle)
	v.SetDefault("report_author", defaults.ReportAuthor)
	v.SetDefault("theme", defaults.Theme)

	v.SetEnvPrefix("TRAYCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := o.cfgFile
	if path == "" {
		path = defaultConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		o.logger.Debug("loaded config", "path", path)
	}

	var cfg model.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Normalize()
	o.config = cfg
	return nil
}
