package filter

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// staticHelpers returns functions that do not depend on the record
func staticHelpers() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse(dateLayout, dateStr)
			return t
		},
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

// recordHelpers returns closures over a single record. A nil record yields
// helpers with the same signatures, used while compiling.
func recordHelpers(record map[string]any) map[string]any {
	ratings, _ := record["ratings"].(map[string]any)
	releaseDates, _ := record["release_dates"].(map[string]any)
	alternateIDs, _ := record["alternate_ids"].(map[string]any)

	return map[string]any{
		"criticsScore": func() float64 {
			return score(ratings, "critics_score")
		},
		"audienceScore": func() float64 {
			return score(ratings, "audience_score")
		},
		"hasCast": func(name string) bool {
			cast, _ := record["abridged_cast"].([]any)
			for _, member := range cast {
				m, ok := member.(map[string]any)
				if !ok {
					continue
				}
				if n, _ := m["name"].(string); strings.EqualFold(n, name) {
					return true
				}
			}
			return false
		},
		"releasedOn": func(kind string) time.Time {
			s, _ := releaseDates[kind].(string)
			t, _ := time.Parse(dateLayout, s)
			return t
		},
		"imdbID": func() string {
			id, _ := alternateIDs["imdb"].(string)
			return id
		},
	}
}

// score reads a numeric rating; the API reports missing scores as -1
func score(ratings map[string]any, key string) float64 {
	if v, ok := ratings[key].(float64); ok {
		return v
	}
	return -1
}
