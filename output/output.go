// Package output renders holiday lists as text, JSON, CSV or msgpack.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"

	"github.com/alpacahq/jpholiday/holiday"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Format string

const (
	Text    Format = "text"
	JSON    Format = "json"
	CSV     Format = "csv"
	Msgpack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, CSV, Msgpack:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", errors.Errorf("unknown output format: %q", s)
	}
}

// Record is the serialized form of a holiday.
type Record struct {
	Date    string `json:"date" csv:"date" msgpack:"date"`
	Weekday string `json:"weekday" csv:"weekday" msgpack:"weekday"`
	Name    string `json:"name" csv:"name" msgpack:"name"`
}

func toRecords(hs []holiday.Holiday) []Record {
	records := make([]Record, 0, len(hs))
	for _, h := range hs {
		records = append(records, Record{
			Date:    h.Date.String(),
			Weekday: h.Date.Weekday().String()[:3],
			Name:    h.Name,
		})
	}
	return records
}

// Write renders hs to w in format f.
func Write(w io.Writer, f Format, hs []holiday.Holiday) error {
	records := toRecords(hs)

	switch f {
	case Text, "":
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%s %s %s\n", r.Date, r.Weekday, r.Name); err != nil {
				return errors.Wrap(err, "failed to write holidays")
			}
		}
		return nil
	default:
		return Encode(w, f, records)
	}
}

// Encode writes v, a slice of tagged structs, in one of the structured
// formats. Text has no generic rendering and is refused.
func Encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case JSON:
		return errors.Wrap(json.NewEncoder(w).Encode(v), "failed to encode json")
	case CSV:
		return errors.Wrap(gocsv.Marshal(v, w), "failed to encode csv")
	case Msgpack:
		return errors.Wrap(msgpack.NewEncoder(w).Encode(v), "failed to encode msgpack")
	default:
		return errors.Errorf("unsupported output format: %q", f)
	}
}
