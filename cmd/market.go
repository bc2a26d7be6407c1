package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alpacahq/jpholiday/market"
	"github.com/alpacahq/jpholiday/output"
)

const (
	marketUsage   = "market <time>"
	marketShort   = "Tell whether the Tokyo market trades at a moment"
	marketLong    = "This command reports whether the market is open at an RFC3339 time, using the market section of the configuration file for hours and closed days"
	marketExample = "jpholiday market 2024-12-30T10:00:00+09:00"

	dayLayout = "2006-01-02"
)

type marketStatus struct {
	Time              string `json:"time" csv:"time" msgpack:"time"`
	MarketDay         bool   `json:"market_day" csv:"market_day" msgpack:"market_day"`
	Open              bool   `json:"open" csv:"open" msgpack:"open"`
	NextMarketDay     string `json:"next_market_day" csv:"next_market_day" msgpack:"next_market_day"`
	PreviousMarketDay string `json:"previous_market_day" csv:"previous_market_day" msgpack:"previous_market_day"`
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dayLayout)
}

func (s *session) marketCmd() *cobra.Command {
	return &cobra.Command{
		Use:     marketUsage,
		Short:   marketShort,
		Long:    marketLong,
		Example: marketExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid time: %s", args[0])
			}
			cmd.SilenceUsage = true

			cfg, err := market.NewConfig(s.config.Market)
			if err != nil {
				return err
			}
			checker := market.NewChecker(cfg, s.config.Timezone)

			status := marketStatus{
				Time:              t.In(checker.Location()).Format(time.RFC3339),
				MarketDay:         checker.IsMarketDay(t),
				Open:              checker.IsOpen(t),
				NextMarketDay:     formatDay(checker.NextMarketDay(t)),
				PreviousMarketDay: formatDay(checker.PreviousMarketDay(t)),
			}

			if s.format != output.Text {
				return output.Encode(cmd.OutOrStdout(), s.format, []marketStatus{status})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"time: %s\nmarket day: %t\nopen: %t\nnext market day: %s\nprevious market day: %s\n",
				status.Time, status.MarketDay, status.Open, status.NextMarketDay, status.PreviousMarketDay)
			return errors.Wrap(err, "failed to write market status")
		},
	}
}
