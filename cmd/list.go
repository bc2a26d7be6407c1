package cmd

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alpacahq/jpholiday/holiday"
	"github.com/alpacahq/jpholiday/output"
)

const (
	monthUsage   = "month <year> <month>"
	monthShort   = "List the holidays of a month"
	monthExample = "jpholiday month 2024 9"

	yearUsage   = "year <year>"
	yearShort   = "List the holidays of a year"
	yearExample = "jpholiday year 2024 --format csv"

	betweenUsage   = "between <start> <end>"
	betweenShort   = "List the holidays between two dates"
	betweenLong    = "This command lists the holidays from start through end. With --exclusive the end date is left out"
	betweenExample = "jpholiday between 2019-04-27 2019-05-06 --exclusive"
	exclusiveDesc  = "leave the end date out of the range"
)

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid year: %s", s)
	}
	return year, nil
}

func (s *session) monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:     monthUsage,
		Short:   monthShort,
		Example: monthExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid month: %s", args[1])
			}
			cmd.SilenceUsage = true

			return output.Write(cmd.OutOrStdout(), s.format, holiday.InMonth(year, time.Month(month)))
		},
	}
}

func (s *session) yearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     yearUsage,
		Short:   yearShort,
		Example: yearExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			return output.Write(cmd.OutOrStdout(), s.format, holiday.InYear(year))
		},
	}
}

func (s *session) betweenCmd() *cobra.Command {
	var exclusive bool

	c := &cobra.Command{
		Use:     betweenUsage,
		Short:   betweenShort,
		Long:    betweenLong,
		Example: betweenExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := holiday.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid start date")
			}
			end, err := holiday.Parse(args[1])
			if err != nil {
				return errors.Wrap(err, "invalid end date")
			}
			cmd.SilenceUsage = true

			return output.Write(cmd.OutOrStdout(), s.format, holiday.Between(start, end, !exclusive))
		},
	}
	c.Flags().BoolVarP(&exclusive, "exclusive", "x", false, exclusiveDesc)
	return c
}
