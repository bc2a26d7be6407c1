package market

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/alpacahq/jpholiday/holiday"
)

// json iter supports marshal/unmarshal of map[interface{}]interface{} type.
// The market section of jpholiday.yml arrives here as a map decoded by
// yaml.v2, whose nested maps have that type, so the standard "encoding/json"
// library cannot round trip it.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tokyo Stock Exchange cash market hours.
const (
	defaultOpenTime  = "09:00:00"
	defaultCloseTime = "15:30:00"
)

// Config is the market section of the configuration file.
type Config struct {
	OpenTime   CustomTime  `json:"open_time"`
	CloseTime  CustomTime  `json:"close_time"`
	ClosedDays []CustomDay `json:"closed_days"`
}

// NewConfig casts a map object to Config struct and returns it through json marshal->unmarshal
func NewConfig(config map[string]interface{}) (*Config, error) {
	data, err := json.Marshal(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse the market config through json marshal->unmarshal")
	}

	ret := Config{}
	if err := json.Unmarshal(data, &ret); err != nil {
		return nil, errors.Wrap(err, "failed to parse the market config")
	}

	if time.Time(ret.OpenTime).IsZero() {
		t, _ := time.Parse(ctLayout, defaultOpenTime)
		ret.OpenTime = CustomTime(t)
	}
	if time.Time(ret.CloseTime).IsZero() {
		t, _ := time.Parse(ctLayout, defaultCloseTime)
		ret.CloseTime = CustomTime(t)
	}
	if !time.Time(ret.OpenTime).Before(time.Time(ret.CloseTime)) {
		return nil, errors.Errorf("open_time %s must be before close_time %s",
			ret.OpenTime, ret.CloseTime)
	}

	return &ret, nil
}

// CustomTime is a time of day written as hh:mm:ss. Only the clock part of
// the wrapped time.Time is meaningful.
type CustomTime time.Time

const ctLayout = "15:04:05"

func (ct *CustomTime) UnmarshalJSON(input []byte) error {
	s := strings.Trim(string(input), "\"")
	if s == "null" {
		*ct = CustomTime(time.Time{})
		return nil
	}
	t, err := time.Parse(ctLayout, s)
	if err != nil {
		return errors.Wrapf(err, "market hours must be hh:mm:ss, got %q", s)
	}
	*ct = CustomTime(t)
	return nil
}

func (ct CustomTime) clock() clock {
	return clockOf(time.Time(ct))
}

func (ct CustomTime) String() string {
	return time.Time(ct).Format(ctLayout)
}

// CustomDay is a closed day written as yyyy/mm/dd.
type CustomDay holiday.Date

const cdLayout = "2006/01/02"

func (cd *CustomDay) UnmarshalJSON(input []byte) error {
	s := strings.Trim(string(input), "\"")
	if s == "null" {
		*cd = CustomDay{}
		return nil
	}
	t, err := time.Parse(cdLayout, s)
	if err != nil {
		return errors.Wrapf(err, "closed days must be yyyy/mm/dd, got %q", s)
	}
	*cd = CustomDay(holiday.FromTime(t))
	return nil
}

// ClosedDates returns the configured closed days in file order.
func (c *Config) ClosedDates() []holiday.Date {
	out := make([]holiday.Date, len(c.ClosedDays))
	for i, d := range c.ClosedDays {
		out[i] = holiday.Date(d)
	}
	return out
}
