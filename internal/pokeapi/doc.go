// Package pokeapi provides an HTTP client for the public PokeAPI catalog.
//
// # Overview
//
// dexter only reads two endpoints:
//
//   - GET {base}/pokemon/{id or name}: one record
//   - GET {base}/pokemon?limit=1: listing whose count is the highest valid id
//
// Responses are decoded into the small structs in types.go. Fields dexter
// does not render are ignored by the decoder.
//
// # Client Usage
//
//	client, err := pokeapi.NewClient(pokeapi.DefaultBaseURL, pokeapi.Options{
//		RequestsPerSecond: 5,
//		Burst:             2,
//	})
//	if err != nil {
//		return err
//	}
//	rec, err := client.FetchPokemon(ctx, "pikachu")
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Wait on a token-bucket limiter when one is configured, keeping the
//     client within the public API's fair use policy
//   - Set Accept: application/json and User-Agent: dexter/0.1
//   - Return wrapped errors naming the failed step
//
// # Error Handling
//
//   - Non-2xx responses return *StatusError; a 404 also matches ErrNotFound
//     through errors.Is
//   - Decode failures are wrapped with "decode response"
//   - A listing without a positive count returns ErrMalformed
//
// Callers decide how to degrade; the client never retries.
package pokeapi
