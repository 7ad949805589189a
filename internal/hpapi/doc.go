// Package hpapi provides an HTTP client for the Harry Potter reference API.
//
// # Overview
//
// The API is read-only and small enough to be fetched in full, so the client
// exposes one method per endpoint and nothing else: no caching, no paging and
// no retries. Each call is a single round trip bounded by the caller's
// context and the client's request timeout. Retry policy, where wanted,
// belongs to the caller (see internal/app).
//
// # Endpoints
//
//	GET /characters        -> []Character
//	GET /character/{id}    -> []Character (zero or one element)
//	GET /spells            -> []Spell
//	GET /houses            -> []House
//
// All paths resolve beneath the configured base, which defaults to
// https://hp-api.onrender.com/api.
//
// # Error Handling
//
// Failures fall into two buckets:
//
//   - ErrRemoteUnavailable: transport errors, timeouts, non-2xx statuses and
//     undecodable payloads. Non-2xx responses are additionally reported as
//     *HTTPError so callers can use IsStatus.
//   - ErrNotFound: GetCharacter received an empty array. This is never also
//     ErrRemoteUnavailable, so a missing id can be told apart from an
//     unreachable API.
//
// # Usage Example
//
//	client, err := hpapi.NewClient("")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	chars, err := client.ListCharacters(ctx)
//	if err != nil {
//		log.Printf("character fetch failed: %v", err)
//	}
//
//	char, err := client.GetCharacter(ctx, id)
//	switch {
//	case errors.Is(err, hpapi.ErrNotFound):
//		// show "character not found"
//	case err != nil:
//		// leave the view loading; the failure is logged only
//	}
package hpapi
