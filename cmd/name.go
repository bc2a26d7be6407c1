package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alpacahq/jpholiday/holiday"
	"github.com/alpacahq/jpholiday/output"
)

const (
	nameUsage   = "name <date>"
	nameShort   = "Print the name of the holiday on a date"
	nameLong    = "This command prints the name of the national holiday on a date, or nothing when the date is not a holiday"
	nameExample = "jpholiday name 2019/05/01"

	workdayUsage   = "workday <date>"
	workdayShort   = "Tell whether a date is a working day"
	workdayLong    = "This command prints \"workday\" or \"non-working day\". Saturdays, Sundays and national holidays are non-working days"
	workdayExample = "jpholiday workday 2024-09-23"
)

func (s *session) nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     nameUsage,
		Short:   nameShort,
		Long:    nameLong,
		Example: nameExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			// text that is not a date is not a holiday
			d, err := holiday.Parse(args[0])
			if err != nil {
				return nil
			}
			name, ok := holiday.Name(d)
			if !ok {
				return nil
			}

			if s.format == output.Text {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
				return errors.Wrap(err, "failed to write holiday name")
			}
			return output.Write(cmd.OutOrStdout(), s.format, []holiday.Holiday{{Date: d, Name: name}})
		},
	}
}

func (s *session) workdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     workdayUsage,
		Short:   workdayShort,
		Long:    workdayLong,
		Example: workdayExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := holiday.Parse(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			answer := "workday"
			if holiday.IsNonWorkingDay(d) {
				answer = "non-working day"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return errors.Wrap(err, "failed to write answer")
		},
	}
}
