// Package http provides the rate-limited, retrying HTTP client and the
// authentication strategies shared by the source connectors.
package http
