// Package main hosts the mvault CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// ingestion runs, source-table reconciliation, quality audits, and repair
// passes over the content set. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
