// Package semsearch asks a language model to find passages of a text that
// semantically match a query, and returns the model's answer as structured
// results.
//
// No matching happens locally. A Client renders a fixed instruction template,
// sends it with the query and body to an ai.Responder, isolates the JSON
// object in the reply and decodes it into core.SearchResults.
//
//	client, err := semsearch.New(semsearch.WithAIConfig(ai.DefaultConfig()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	results, err := client.Search(ctx, "mentions of AI", body)
//
// SearchAsync offers the same call with a completion callback for callers
// that prefer that convention.
package semsearch
