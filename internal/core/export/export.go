// Package export renders posts as CSV in a fixed column order
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"narrativedesk/internal/core/posts"
)

// Header is the column order of every export
var Header = []string{
	"id", "accountName", "handle", "platform", "location",
	"geoCoordinates", "engagements", "narrative", "validFrom", "validTo",
}

// Option configures WriteCSV
type Option func(*options)

type options struct {
	header bool
	comma  rune
}

// WithHeader toggles the header line (on by default)
func WithHeader(on bool) Option { return func(o *options) { o.header = on } }

// WithComma sets the field delimiter; invalid delimiters are ignored
func WithComma(r rune) Option {
	return func(o *options) {
		if r != 0 && r != '"' && r != '\r' && r != '\n' {
			o.comma = r
		}
	}
}

// Record returns p's fields in Header order
func Record(p posts.Post) []string {
	return []string{
		p.ID,
		p.AccountName,
		p.Handle,
		string(p.Platform),
		p.Location,
		p.GeoCoordinates,
		strconv.FormatInt(p.Engagements, 10),
		p.Narrative,
		p.ValidFrom.String(),
		p.ValidTo.String(),
	}
}

// WriteCSV writes one record per post. Fields holding the delimiter, a quote
// or a line break are quoted with inner quotes doubled
func WriteCSV(w io.Writer, in []posts.Post, opts ...Option) error {
	o := options{header: true, comma: ','}
	for _, fn := range opts {
		fn(&o)
	}
	cw := csv.NewWriter(w)
	cw.Comma = o.comma
	if o.header {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("export: header: %w", err)
		}
	}
	for i, p := range in {
		if err := cw.Write(Record(p)); err != nil {
			return fmt.Errorf("export: row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
