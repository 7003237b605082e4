// Package content persists the catalog as one markdown document per video,
// a delimited key/value header followed by free-form body text. The slug in
// the filename is the record's identity.
package content
