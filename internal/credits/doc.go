// Package credits extracts production credits from free-text video
// descriptions.
//
// Extraction is rule based: each field (director, production, label) runs an
// ordered ladder of label patterns with first-success-wins semantics, and
// every director candidate passes through a strict validation gate before it
// is accepted. A tier whose candidate fails validation falls through to the
// next tier rather than failing the extraction.
//
// Nothing here throws on ambiguous input. A description that yields no
// confident match simply produces an empty field; only the caller decides
// whether that matters.
package credits
