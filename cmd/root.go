package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yuriiter/bikeshare/pkg/config"
	"github.com/yuriiter/bikeshare/pkg/display"
	"github.com/yuriiter/bikeshare/pkg/session"
	"github.com/yuriiter/bikeshare/pkg/sources"
	"github.com/yuriiter/bikeshare/pkg/utils"
)

var (
	version = "dev"
	commit  = "none"
)

// options collects flag values before they are layered over the config file.
type options struct {
	configPath string
	dataDir    string
	baseURL    string
	pageSize   int
	color      config.ColorMode
	debug      bool
}

func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{color: config.ColorAuto}

	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip data",
		Long:          "Interactively filter a city's bikeshare trips by month and weekday and report popular times, stations, trip durations and user statistics.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			utils.SetDebug(cfg.Debug)
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				display.Configure(cfg.Color, f)
			} else {
				display.Configure(cfg.Color, nil)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			src := sources.New(&cfg)
			utils.DebugLog("Using %s source for %d cities", src.Name(), len(cfg.Cities))
			s := session.New(src, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.CityNames(), cfg.PageSize)
			return s.Run(ctx)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVarP(&opts.dataDir, "data-dir", "d", "", "Directory containing the city CSV files")
	flags.StringVar(&opts.baseURL, "base-url", "", "Fetch city CSV files from this URL instead of the data directory")
	flags.IntVar(&opts.pageSize, "page-size", 0, "Raw data rows shown per page (default 5)")
	flags.Var(&opts.color, "color", "Color output: auto, always, never")
	flags.BoolVarP(&opts.debug, "debug", "v", false, "Enable debug logs")

	rootCmd.AddCommand(newCitiesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// resolveConfig applies precedence: flag > env > config file > default.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = opts.dataDir
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = opts.baseURL
	}
	if flags.Changed("page-size") {
		cfg.PageSize = opts.pageSize
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
