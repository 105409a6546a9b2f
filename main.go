package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/evrlog/logger"
	"github.com/mordilloSan/evrlog/prettyjson"
)

// Version is injected at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const (
	appName  = "evrlog"
	appShort = "evrlog shows what the evrlog console logger prints"

	demoCmdShort = "print one sample line per level"
	demoCmdLong  = `Print one sample line per level and one plain line.

	The logger is configured from the EVRLOG_* environment variables first,
	then from the flags below. Level lists accept comma-separated names,
	ALL or NONE:

	  EVRLOG_DEBUG              enable output (default true)
	  EVRLOG_COLORIZE           color level names
	  EVRLOG_TIMESTAMP_FORMAT   date pattern, e.g. yyyy-MM-dd HH:mm:ss
	  EVRLOG_TIMESTAMP_LEVELS   levels printing a timestamp
	  EVRLOG_ICON_LEVELS        levels printing an icon
	  EVRLOG_LEVEL_NAME_LEVELS  levels printing their name
	  EVRLOG_CALLSITE_LEVELS    levels printing the call site
	  EVRLOG_ICONS              icon overrides, e.g. ERROR=🔥`
	demoCmdExample = `# Short timestamps and colored level names
	evrlog demo --timestamp-format HH:mm:ss --colorize

	# Read settings from a dotenv file
	evrlog demo --env-file .env`

	prettyCmdShort = "pretty-print JSON read from a file or stdin"
	prettyCmdLong  = `Pretty-print the JSON object or array read from FILE, or from
	standard input when FILE is omitted. Input that is not valid JSON
	prints a fixed placeholder instead of failing.`

	versionCmdShort = "display the " + appName + " version"

	timestampFormatFlagName = "timestamp-format"
	colorizeFlagName        = "colorize"
	releaseFlagName         = "release"
	envFileFlagName         = "env-file"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// rootCmd constructs the root command and its subcommands.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.AddCommand(
		demoCmd(),
		prettyCmd(),
		versionCmd(),
	)
	return cmd
}

// demoFlags holds the flags of the demo command.
type demoFlags struct {
	timestampFormat string
	colorize        bool
	release         bool
	envFile         string
}

func (f *demoFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.timestampFormat, timestampFormatFlagName, logger.DefaultTimestampFormat, "timestamp pattern")
	flags.BoolVar(&f.colorize, colorizeFlagName, false, "color level names")
	flags.BoolVar(&f.release, releaseFlagName, false, "behave like a release build and print nothing")
	flags.StringVar(&f.envFile, envFileFlagName, "", "dotenv file to load before reading EVRLOG_* variables")
}

// newLogger builds the demo logger from the environment and the flags.
func (f *demoFlags) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	if f.envFile != "" {
		if err := godotenv.Load(f.envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", f.envFile, err)
		}
	}

	envVars, err := logger.LoadEnvConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.WithOutput(cmd.OutOrStdout()))
	envVars.Apply(log.Config())
	logger.SetDebugMode(envVars.Debug && !f.release)

	flags := cmd.Flags()
	if flags.Changed(timestampFormatFlagName) {
		log.Config().SetTimestampFormat(f.timestampFormat)
	}
	if flags.Changed(colorizeFlagName) {
		log.Config().SetColorize(f.colorize)
	}
	return log, nil
}

func demoCmd() *cobra.Command {
	flags := &demoFlags{}
	cmd := &cobra.Command{
		Use:     "demo",
		Short:   heredoc.Doc(demoCmdShort),
		Long:    heredoc.Doc(demoCmdLong),
		Example: heredoc.Doc(demoCmdExample),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := flags.newLogger(cmd)
			if err != nil {
				return err
			}
			runDemo(log)
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

func runDemo(log *logger.Logger) {
	log.Debug("loading configuration")
	log.Infof("listening on :%d", 8080)
	log.Warning("cache is cold, first requests will be slow")
	log.Error(fmt.Errorf("dial tcp 10.0.0.2:5432: %s", "connection refused"))
	log.Plain("done")
}

func prettyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pretty [FILE]",
		Short: heredoc.Doc(prettyCmdShort),
		Long:  heredoc.Doc(prettyCmdLong),

		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), prettyjson.String(data))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: heredoc.Doc(versionCmdShort),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, runtime.Version()))
		},
	}
}

func versionString(version, runtimeVersion string) string {
	return version + ", Go Version: " + runtimeVersion
}
