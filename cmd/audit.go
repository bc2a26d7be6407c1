package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alpacahq/jpholiday/holiday"
	"github.com/alpacahq/jpholiday/utils/log"
)

const (
	auditUsage   = "audit"
	auditShort   = "Check that no two holiday rules claim the same date"
	auditLong    = "This command evaluates every day of the given years against every rule and fails when a date is matched by more than one rule"
	auditExample = "jpholiday audit --from 1900 --to 2150"

	defaultAuditFrom = 1900
	defaultAuditTo   = 2150
)

func (s *session) auditCmd() *cobra.Command {
	var from, to int

	c := &cobra.Command{
		Use:     auditUsage,
		Short:   auditShort,
		Long:    auditLong,
		Example: auditExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if to < from {
				return errors.Errorf("--to %d is before --from %d", to, from)
			}
			cmd.SilenceUsage = true

			log.Info("[Audit] checking %d..%d on %d workers", from, to, s.config.Workers)

			total := 0
			for _, hs := range holiday.ScanYears(from, to, s.config.Workers) {
				total += len(hs)
			}

			out := cmd.OutOrStdout()
			overlaps := holiday.Overlaps(from, to, s.config.Workers)
			for _, o := range overlaps {
				fmt.Fprintf(out, "%s %s\n", o.Date, strings.Join(o.Names, ", "))
			}
			if len(overlaps) > 0 {
				return errors.Errorf("%d dates are matched by more than one rule", len(overlaps))
			}

			_, err := fmt.Fprintf(out, "checked %d..%d: %d holidays, no overlapping rules\n", from, to, total)
			return errors.Wrap(err, "failed to write audit result")
		},
	}
	c.Flags().IntVar(&from, "from", defaultAuditFrom, "first year to check")
	c.Flags().IntVar(&to, "to", defaultAuditTo, "last year to check")
	return c
}
