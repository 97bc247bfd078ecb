package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/s0up4200/tomatoes/radarr"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
}

// ConsoleFormatter provides console output formatting for responses
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// treeGlyphs returns the branch prefix and the continuation indent
func treeGlyphs(isLast bool) (string, string) {
	if isLast {
		return "╰", "    "
	}
	return "├", "│   "
}

func plural(sb *strings.Builder, word string, n int) {
	sb.WriteString(word)
	if n != 1 {
		sb.WriteString("s")
	}
}

// FormatMovieList formats a list of movies for console display
func (f *ConsoleFormatter) FormatMovieList(movies []map[string]any, options FormatOptions) string {
	if len(movies) == 0 {
		return "No movies found\n"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	plural(&sb, "Movie", len(movies))
	fmt.Fprintf(&sb, " (%d):\n\n", len(movies))

	for i, movie := range movies {
		isLast := i == len(movies)-1
		prefix, indent := treeGlyphs(isLast)

		fmt.Fprintf(&sb, "%s── %s\n", prefix, movieHeading(movie))

		if line := scoreLine(nested(movie, "ratings")); line != "" {
			fmt.Fprintf(&sb, "%s%s\n", indent, line)
		}

		if options.ShowDetails {
			f.writeDetails(&sb, movie, indent)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatMovie formats a single movie with all details
func (f *ConsoleFormatter) FormatMovie(movie map[string]any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", movieHeading(movie))

	indent := "  "
	if line := scoreLine(nested(movie, "ratings")); line != "" {
		fmt.Fprintf(&sb, "%s%s\n", indent, line)
	}
	if consensus := str(movie, "critics_consensus"); consensus != "" {
		fmt.Fprintf(&sb, "%sConsensus: %s\n", indent, consensus)
	}
	if genres, ok := movie["genres"].([]any); ok && len(genres) > 0 {
		names := make([]string, 0, len(genres))
		for _, g := range genres {
			if s, ok := g.(string); ok {
				names = append(names, s)
			}
		}
		fmt.Fprintf(&sb, "%sGenres: %s\n", indent, strings.Join(names, ", "))
	}
	if directors, ok := movie["abridged_directors"].([]any); ok && len(directors) > 0 {
		fmt.Fprintf(&sb, "%sDirected by: %s\n", indent, strings.Join(names(directors), ", "))
	}
	if studio := str(movie, "studio"); studio != "" {
		fmt.Fprintf(&sb, "%sStudio: %s\n", indent, studio)
	}
	f.writeDetails(&sb, movie, indent)

	return sb.String()
}

func (f *ConsoleFormatter) writeDetails(sb *strings.Builder, movie map[string]any, indent string) {
	var parts []string
	if rating := str(movie, "mpaa_rating"); rating != "" {
		parts = append(parts, "Rated: "+rating)
	}
	if runtime, ok := num(movie, "runtime"); ok && runtime > 0 {
		parts = append(parts, fmt.Sprintf("Runtime: %.0f min", runtime))
	}
	if len(parts) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(parts, " | "))
	}

	if dates := nested(movie, "release_dates"); len(dates) > 0 {
		var dateParts []string
		if d := str(dates, "theater"); d != "" {
			dateParts = append(dateParts, "Theater: "+d)
		}
		if d := str(dates, "dvd"); d != "" {
			dateParts = append(dateParts, "DVD: "+d)
		}
		if len(dateParts) > 0 {
			fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(dateParts, " | "))
		}
	}

	if cast, ok := movie["abridged_cast"].([]any); ok && len(cast) > 0 {
		fmt.Fprintf(sb, "%sCast: %s\n", indent, strings.Join(names(cast), ", "))
	}

	if synopsis := str(movie, "synopsis"); synopsis != "" {
		fmt.Fprintf(sb, "%s%s\n", indent, synopsis)
	}
}

// FormatCast formats the cast of a movie
func (f *ConsoleFormatter) FormatCast(cast []map[string]any) string {
	if len(cast) == 0 {
		return "No cast found\n"
	}

	var sb strings.Builder
	sb.WriteString("\nCast (")
	fmt.Fprintf(&sb, "%d):\n\n", len(cast))

	for i, member := range cast {
		prefix, _ := treeGlyphs(i == len(cast)-1)
		line := str(member, "name")
		if characters, ok := member["characters"].([]any); ok && len(characters) > 0 {
			var chars []string
			for _, c := range characters {
				if s, ok := c.(string); ok {
					chars = append(chars, s)
				}
			}
			line += " as " + strings.Join(chars, ", ")
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, line)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatReviews formats critic reviews
func (f *ConsoleFormatter) FormatReviews(reviews []map[string]any) string {
	if len(reviews) == 0 {
		return "No reviews found\n"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	plural(&sb, "Review", len(reviews))
	fmt.Fprintf(&sb, " (%d):\n\n", len(reviews))

	for i, review := range reviews {
		isLast := i == len(reviews)-1
		prefix, indent := treeGlyphs(isLast)

		heading := str(review, "critic")
		if pub := str(review, "publication"); pub != "" {
			heading += ", " + pub
		}
		if freshness := str(review, "freshness"); freshness != "" {
			heading += fmt.Sprintf(" [%s]", freshness)
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, heading)

		var meta []string
		if date := str(review, "date"); date != "" {
			meta = append(meta, date)
		}
		if score := str(review, "original_score"); score != "" {
			meta = append(meta, "Score: "+score)
		}
		if len(meta) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(meta, " | "))
		}
		if quote := str(review, "quote"); quote != "" {
			fmt.Fprintf(&sb, "%s%q\n", indent, quote)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatDirectory formats a lists directory response
func (f *ConsoleFormatter) FormatDirectory(directory map[string]any) string {
	links := nested(directory, "links")
	if len(links) == 0 {
		return "No lists found\n"
	}

	keys := make([]string, 0, len(links))
	for k := range links {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nLists (%d):\n\n", len(keys))
	for i, k := range keys {
		prefix, _ := treeGlyphs(i == len(keys)-1)
		fmt.Fprintf(&sb, "%s── %s: %s\n", prefix, k, str(links, k))
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatScores formats Radarr library movies with their scores
func (f *ConsoleFormatter) FormatScores(results []radarr.ScoredMovie) string {
	if len(results) == 0 {
		return "No movies looked up\n"
	}

	var sb strings.Builder
	var missing, failed int

	sb.WriteString("\nRadarr ")
	plural(&sb, "movie", len(results))
	fmt.Fprintf(&sb, " (%d):\n\n", len(results))

	for i, r := range results {
		isLast := i == len(results)-1
		prefix, indent := treeGlyphs(isLast)

		fmt.Fprintf(&sb, "%s── %s (%d)\n", prefix, r.Movie.Title, r.Movie.Year)

		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(&sb, "%sLookup failed: %v\n", indent, r.Err)
		case !r.Found:
			missing++
			fmt.Fprintf(&sb, "%sNot on Rotten Tomatoes (%s)\n", indent, r.Movie.IMDBID)
		default:
			line := scoreLine(map[string]any{
				"critics_score":   r.CriticsScore,
				"critics_rating":  r.CriticsRating,
				"audience_score":  r.AudienceScore,
				"audience_rating": r.AudienceRating,
			})
			if line == "" {
				line = "No scores yet"
			}
			fmt.Fprintf(&sb, "%s%s\n", indent, line)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	if missing > 0 || failed > 0 {
		fmt.Fprintf(&sb, "\n%d not found, %d failed\n", missing, failed)
	}

	sb.WriteString("\n")
	return sb.String()
}

func movieHeading(movie map[string]any) string {
	title := str(movie, "title")
	if year, ok := num(movie, "year"); ok && year > 0 {
		return fmt.Sprintf("%s (%.0f)", title, year)
	}
	return title
}

// scoreLine renders critics and audience scores; negative scores are unset
func scoreLine(ratings map[string]any) string {
	var parts []string
	if s, ok := num(ratings, "critics_score"); ok && s >= 0 {
		part := fmt.Sprintf("Critics: %.0f%%", s)
		if r := str(ratings, "critics_rating"); r != "" {
			part += " " + r
		}
		parts = append(parts, part)
	}
	if s, ok := num(ratings, "audience_score"); ok && s >= 0 {
		part := fmt.Sprintf("Audience: %.0f%%", s)
		if r := str(ratings, "audience_rating"); r != "" {
			part += " " + r
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " | ")
}

func names(people []any) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		if m, ok := p.(map[string]any); ok {
			if n := str(m, "name"); n != "" {
				out = append(out, n)
			}
		}
	}
	return out
}
