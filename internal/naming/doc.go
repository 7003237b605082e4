// Package naming canonicalizes the names flowing through the pipeline.
//
// It resolves channel names to artists via a static alias table with
// noise-suffix stripping, fixes stylized artist capitalization, cleans song
// titles of platform noise and redundant artist prefixes, and owns the
// canonical slug convention used for content record identity. All functions
// are pure; the alias tables are fixed at build time.
package naming
