package rottentomatoes

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Param is the name of a query parameter accepted by the API.
type Param string

const (
	// ParamAPIKey carries the API key. It is always set by the client.
	ParamAPIKey Param = "apikey"
	// ParamQuery is the search text
	ParamQuery Param = "q"
	// ParamPage selects the page of a paged list
	ParamPage Param = "page"
	// ParamPageLimit is the number of results per page
	ParamPageLimit Param = "page_limit"
	// ParamLimit caps the number of results of unpaged lists
	ParamLimit Param = "limit"
	// ParamCountry is a two letter country code
	ParamCountry Param = "country"
	// ParamReviewType is one of all, top_critic or dvd
	ParamReviewType Param = "review_type"
	// ParamType is the alias type, e.g. imdb
	ParamType Param = "type"
	// ParamID is the alias identifier
	ParamID Param = "id"
)

// Args holds optional query parameters for a request. Parameters an
// endpoint does not accept are dropped, as are nil values.
type Args map[Param]any

// buildParams returns the query for a request: the API key plus every
// allowed parameter present in args with a non-nil value.
func (c *Client) buildParams(args Args, allowed []Param) url.Values {
	params := url.Values{}
	params.Set(string(ParamAPIKey), c.apiKey)

	for _, p := range allowed {
		if p == ParamAPIKey {
			continue
		}
		v, ok := args[p]
		if !ok {
			continue
		}
		if s, ok := formatValue(v); ok {
			params.Set(string(p), s)
		}
	}

	return params
}

// formatValue renders a scalar for the query string. The second result is
// false for nil values, including nil pointers.
func formatValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface())
	}

	switch val := v.(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return fmt.Sprint(val), true
	}
}
