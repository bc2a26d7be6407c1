package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/jpholiday/output"
	"github.com/alpacahq/jpholiday/utils"
	"github.com/alpacahq/jpholiday/utils/log"
)

const (
	defaultConfigFilePath = "./jpholiday.yml"
	configDesc            = "set the path for the jpholiday YAML configuration file"
	formatDesc            = "output format: text, json, csv or msgpack (overrides the config file)"
)

// session is the state shared by the subcommands of one invocation.
type session struct {
	configPath   string
	formatFlag   string
	printVersion bool

	config *utils.Config
	format output.Format
}

// Execute builds the command tree and executes commands.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the jpholiday command with all of its subcommands.
func NewRootCommand() *cobra.Command {
	s := &session{}

	// c is the root command.
	c := &cobra.Command{
		Use:   "jpholiday",
		Short: "Look up Japanese national holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if s.printVersion {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "version: %s\n", utils.Tag)
				fmt.Fprintf(out, "commit hash: %s\n", utils.GitHash)
				fmt.Fprintf(out, "utc build time: %s\n", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
	}

	c.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return s.load(c.PersistentFlags().Changed("format"))
	}

	// Adds subcommands, global flags and version flag.
	c.AddCommand(
		s.nameCmd(),
		s.workdayCmd(),
		s.monthCmd(),
		s.yearCmd(),
		s.betweenCmd(),
		s.marketCmd(),
		s.auditCmd(),
	)
	c.PersistentFlags().StringVarP(&s.configPath, "config", "c", defaultConfigFilePath, configDesc)
	c.PersistentFlags().StringVarP(&s.formatFlag, "format", "f", "", formatDesc)
	c.Flags().BoolVarP(&s.printVersion, "version", "v", false, "show the version info and exit")

	return c
}

// load reads the configuration and applies it to the process.
func (s *session) load(formatChanged bool) error {
	config, err := utils.LoadConfig(s.configPath)
	if err != nil {
		return err
	}

	log.SetLevel(config.LogLevel)
	utils.InstanceConfig = config
	s.config = config

	name := config.Format
	if formatChanged {
		name = s.formatFlag
	}
	if s.format, err = output.ParseFormat(name); err != nil {
		return err
	}

	log.Debug("using %v for configuration, timezone %v, format %v",
		s.configPath, config.Timezone, s.format)
	return nil
}
