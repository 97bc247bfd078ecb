// Package rottentomatoes provides a client for the Rotten Tomatoes public v1.0 JSON API.
//
// Every endpoint is a GET against a fixed path under the base URL. The client
// attaches the API key to each request, forwards only the query parameters the
// endpoint accepts, and returns the decoded JSON body as a generic value.
//
// # Usage
//
//	client := rottentomatoes.NewClient("your-api-key",
//		rottentomatoes.WithTimeout(10*time.Second),
//		rottentomatoes.WithLogger(logger),
//	)
//
//	ctx := context.Background()
//	result, err := client.MoviesSearch(ctx, rottentomatoes.Args{
//		rottentomatoes.ParamQuery:     "alien",
//		rottentomatoes.ParamPageLimit: 10,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Responses
//
// Results are whatever encoding/json produces for the body: map[string]any
// for objects, []any for arrays, float64, string, bool or nil for scalars.
// Numbers are always float64. Movie IDs and counts fit exactly; an integer
// beyond 2^53 would be rounded.
// HTTP status codes are not interpreted, so an error payload returned with a
// 4xx status is handed back like any other body.
//
// # Error Handling
//
//   - ErrInvalidResponse: the body was not valid JSON (see DecodeError)
//   - transport failures are returned wrapped, so errors.Is works with
//     context.Canceled and context.DeadlineExceeded
package rottentomatoes
