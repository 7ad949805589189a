// Package portrait finds a fallback character portrait on the community wiki.
//
// Characters whose image is not hosted on the API's own image host can have a
// portrait looked up on demand. The lookup fetches the character's wiki page
// through a CORS relay, pulls the first og:image meta tag out of the HTML and
// strips the revision and thumbnail-scaling segments from it. The resulting
// URL must be requested with the wiki as Referer and a browser User-Agent.
//
// Extraction is a single regular expression, not an HTML parse. It only
// matches tags that list property before content, and it breaks if the wiki
// changes its markup. That is a known limitation.
//
// Tracker holds the per-view state machine around a lookup:
//
//	Unresolved -> Loading -> Resolved | Failed
//	UsingPrimary (no lookup needed)
//
// Failed is terminal for the lifetime of a view. Teardown cancels the request
// in flight and guarantees no late result is committed.
package portrait
