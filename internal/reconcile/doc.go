// Package reconcile compares the hand-maintained source tables against the
// generated content set and classifies every row. The output is a report
// for a human, not a mutation; applying fixes is a separate step.
package reconcile
