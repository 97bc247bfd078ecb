package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how responses are written
type Format string

const (
	// FormatPretty renders known response shapes as trees
	FormatPretty Format = "pretty"
	// FormatJSON writes the response body as indented JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPretty, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be 'pretty' or 'json')", s)
	}
}

// Renderer writes responses in the configured format
type Renderer struct {
	w         io.Writer
	format    Format
	options   FormatOptions
	formatter *ConsoleFormatter
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, format Format, options FormatOptions) *Renderer {
	return &Renderer{
		w:         w,
		format:    format,
		options:   options,
		formatter: NewConsoleFormatter(),
	}
}

// Format returns the configured output format
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes a decoded response. Shapes the console formatter does not
// know fall back to JSON.
func (r *Renderer) Render(resp any) error {
	if r.format == FormatJSON {
		return r.JSON(resp)
	}

	var text string
	switch Classify(resp) {
	case KindMovieList:
		text = r.formatter.FormatMovieList(Records(resp, "movies"), r.options)
	case KindMovie:
		text = r.formatter.FormatMovie(resp.(map[string]any))
	case KindCast:
		text = r.formatter.FormatCast(Records(resp, "cast"))
	case KindReviews:
		text = r.formatter.FormatReviews(Records(resp, "reviews"))
	case KindDirectory:
		text = r.formatter.FormatDirectory(resp.(map[string]any))
	default:
		return r.JSON(resp)
	}

	_, err := io.WriteString(r.w, text)
	return err
}

// Text writes preformatted text
func (r *Renderer) Text(text string) error {
	_, err := io.WriteString(r.w, text)
	return err
}

// JSON writes v as indented JSON
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
