package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tomatoes/radarr"
)

func movieList() map[string]any {
	return map[string]any{
		"total": float64(2),
		"movies": []any{
			map[string]any{
				"id":          "770672122",
				"title":       "Toy Story 3",
				"year":        float64(2010),
				"mpaa_rating": "G",
				"runtime":     float64(103),
				"ratings": map[string]any{
					"critics_rating": "Certified Fresh",
					"critics_score":  float64(99),
					"audience_score": float64(89),
				},
				"release_dates": map[string]any{"theater": "2010-06-18"},
				"abridged_cast": []any{
					map[string]any{"name": "Tom Hanks"},
					map[string]any{"name": "Tim Allen"},
				},
			},
			map[string]any{
				"id":      "9",
				"title":   "Unreleased",
				"ratings": map[string]any{"critics_score": float64(-1)},
			},
			"not an object",
		},
		"links": map[string]any{"self": "http://example.test"},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		resp any
		want Kind
	}{
		{"movie list", movieList(), KindMovieList},
		{"movie", map[string]any{"id": "1", "title": "Alien"}, KindMovie},
		{"cast", map[string]any{"cast": []any{}}, KindCast},
		{"reviews", map[string]any{"total": float64(0), "reviews": []any{}}, KindReviews},
		{"directory", map[string]any{"links": map[string]any{}, "link_template": "x"}, KindDirectory},
		{"error body", map[string]any{"error": "Account Inactive"}, KindUnknown},
		{"array", []any{float64(1)}, KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.resp))
		})
	}
}

func TestRecords(t *testing.T) {
	records := Records(movieList(), "movies")
	require.Len(t, records, 2)
	assert.Equal(t, "Toy Story 3", records[0]["title"])

	assert.Empty(t, Records([]any{}, "movies"))
	assert.Empty(t, Records(map[string]any{}, "movies"))
}

func TestWithRecords(t *testing.T) {
	original := movieList()
	records := Records(original, "movies")[:1]

	replaced := WithRecords(original, "movies", records).(map[string]any)
	assert.Len(t, replaced["movies"], 1)
	assert.Equal(t, original["total"], replaced["total"])
	assert.Len(t, original["movies"], 3)

	assert.Equal(t, "scalar", WithRecords("scalar", "movies", nil))
}

func TestFormatMovieList(t *testing.T) {
	f := NewConsoleFormatter()
	text := f.FormatMovieList(Records(movieList(), "movies"), FormatOptions{ShowDetails: true})

	assert.Contains(t, text, "Movies (2):")
	assert.Contains(t, text, "├── Toy Story 3 (2010)")
	assert.Contains(t, text, "Critics: 99% Certified Fresh | Audience: 89%")
	assert.Contains(t, text, "Rated: G | Runtime: 103 min")
	assert.Contains(t, text, "Theater: 2010-06-18")
	assert.Contains(t, text, "Cast: Tom Hanks, Tim Allen")
	assert.Contains(t, text, "╰── Unreleased")
	assert.NotContains(t, text, "Critics: -1")

	brief := f.FormatMovieList(Records(movieList(), "movies"), FormatOptions{})
	assert.NotContains(t, brief, "Cast:")

	assert.Equal(t, "No movies found\n", f.FormatMovieList(nil, FormatOptions{}))
}

func TestFormatMovie(t *testing.T) {
	movie := map[string]any{
		"title":              "Alien",
		"year":               float64(1979),
		"critics_consensus":  "A modern classic.",
		"genres":             []any{"Horror", "Science Fiction"},
		"abridged_directors": []any{map[string]any{"name": "Ridley Scott"}},
		"studio":             "20th Century Fox",
	}

	text := NewConsoleFormatter().FormatMovie(movie)
	assert.Contains(t, text, "Alien (1979)")
	assert.Contains(t, text, "Consensus: A modern classic.")
	assert.Contains(t, text, "Genres: Horror, Science Fiction")
	assert.Contains(t, text, "Directed by: Ridley Scott")
	assert.Contains(t, text, "Studio: 20th Century Fox")
}

func TestFormatCastAndReviews(t *testing.T) {
	f := NewConsoleFormatter()

	cast := f.FormatCast([]map[string]any{
		{"name": "Tom Hanks", "characters": []any{"Woody"}},
		{"name": "Tim Allen"},
	})
	assert.Contains(t, cast, "Cast (2):")
	assert.Contains(t, cast, "├── Tom Hanks as Woody")
	assert.Contains(t, cast, "╰── Tim Allen")

	reviews := f.FormatReviews([]map[string]any{
		{
			"critic":         "Roger Ebert",
			"publication":    "Chicago Sun-Times",
			"freshness":      "fresh",
			"date":           "2010-06-17",
			"original_score": "4/4",
			"quote":          "A joy.",
		},
	})
	assert.Contains(t, reviews, "Review (1):")
	assert.Contains(t, reviews, "╰── Roger Ebert, Chicago Sun-Times [fresh]")
	assert.Contains(t, reviews, "2010-06-17 | Score: 4/4")
	assert.Contains(t, reviews, `"A joy."`)

	assert.Equal(t, "No cast found\n", f.FormatCast(nil))
	assert.Equal(t, "No reviews found\n", f.FormatReviews(nil))
}

func TestFormatDirectory(t *testing.T) {
	text := NewConsoleFormatter().FormatDirectory(map[string]any{
		"links": map[string]any{
			"movies": "http://api.rottentomatoes.com/api/public/v1.0/lists/movies.json",
			"dvds":   "http://api.rottentomatoes.com/api/public/v1.0/lists/dvds.json",
		},
	})
	assert.Contains(t, text, "Lists (2):")
	assert.Less(t, strings.Index(text, "dvds"), strings.Index(text, "movies"))
}

func TestFormatScores(t *testing.T) {
	results := []radarr.ScoredMovie{
		{Movie: radarr.MovieRef{Title: "Alien", Year: 1979, IMDBID: "tt0078748"}},
		{Movie: radarr.MovieRef{Title: "Broken", Year: 2001}, Err: errors.New("timeout")},
		{
			Movie:         radarr.MovieRef{Title: "Toy Story 3", Year: 2010},
			Found:         true,
			CriticsScore:  99,
			CriticsRating: "Certified Fresh",
			AudienceScore: -1,
		},
	}

	text := NewConsoleFormatter().FormatScores(results)
	assert.Contains(t, text, "Radarr movies (3):")
	assert.Contains(t, text, "Not on Rotten Tomatoes (tt0078748)")
	assert.Contains(t, text, "Lookup failed: timeout")
	assert.Contains(t, text, "Critics: 99% Certified Fresh")
	assert.NotContains(t, text, "Audience")
	assert.Contains(t, text, "1 not found, 1 failed")
}

func TestRenderer(t *testing.T) {
	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, FormatPretty, FormatOptions{})
		require.NoError(t, r.Render(movieList()))
		assert.Contains(t, buf.String(), "Toy Story 3 (2010)")
	})

	t.Run("pretty falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, FormatPretty, FormatOptions{})
		require.NoError(t, r.Render(map[string]any{"error": "Account Inactive"}))
		assert.JSONEq(t, `{"error": "Account Inactive"}`, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, FormatJSON, FormatOptions{})
		require.NoError(t, r.Render(map[string]any{"id": float64(1)}))
		assert.Equal(t, "{\n  \"id\": 1\n}\n", buf.String())
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}
