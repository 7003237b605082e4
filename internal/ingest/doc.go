// Package ingest turns video URLs into persisted content records. The
// pipeline resolves the artist from channel and title, cleans the title,
// extracts credits from the description, downloads a cover with placeholder
// detection, and writes the record under its deterministic slug. Batch runs
// are paced and guarded by a content-directory lock.
package ingest
