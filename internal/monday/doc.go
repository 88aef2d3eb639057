// Package monday is a read-only client for the monday.com GraphQL API.
// It fetches board column schemas and paginated board items, flattening
// each item's column values into a domain.RawItem for the cleaning
// pipeline. Transient transport failures are retried with exponential
// backoff; requests are rate limited to stay inside the API's
// complexity budget.
package monday
