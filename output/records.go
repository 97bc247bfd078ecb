// Package output renders Rotten Tomatoes responses for the terminal.
package output

import (
	"strconv"
)

// Kind is the shape of a response as far as rendering is concerned
type Kind int

const (
	KindUnknown Kind = iota
	KindMovieList
	KindMovie
	KindCast
	KindReviews
	KindDirectory
)

// Classify inspects a decoded response to pick a renderer
func Classify(resp any) Kind {
	body, ok := resp.(map[string]any)
	if !ok {
		return KindUnknown
	}
	switch {
	case isList(body["movies"]):
		return KindMovieList
	case isList(body["cast"]):
		return KindCast
	case isList(body["reviews"]):
		return KindReviews
	case body["title"] != nil:
		return KindMovie
	case body["links"] != nil && len(body) <= 2:
		return KindDirectory
	default:
		return KindUnknown
	}
}

func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// Records returns the objects in the array stored under key. Elements that
// are not objects are skipped.
func Records(resp any, key string) []map[string]any {
	body, ok := resp.(map[string]any)
	if !ok {
		return nil
	}
	items, _ := body[key].([]any)
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if r, ok := item.(map[string]any); ok {
			records = append(records, r)
		}
	}
	return records
}

// WithRecords returns a shallow copy of resp with the array under key
// replaced by records
func WithRecords(resp any, key string, records []map[string]any) any {
	body, ok := resp.(map[string]any)
	if !ok {
		return resp
	}
	out := make(map[string]any, len(body))
	for k, v := range body {
		out[k] = v
	}
	items := make([]any, len(records))
	for i, r := range records {
		items[i] = r
	}
	out[key] = items
	return out
}

func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func nested(m map[string]any, key string) map[string]any {
	n, _ := m[key].(map[string]any)
	return n
}

func num(m map[string]any, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}
