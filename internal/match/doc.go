// Package match locates the content record corresponding to a source table
// row. Hand-maintained table rows and generated slugs rarely agree exactly,
// so matching is a cascade of progressively weaker layers, each reporting
// which layer fired.
package match
