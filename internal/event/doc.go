// Package event provides the canonical event record shape shared by every
// scraper and the import pipeline, plus the heuristics that turn loosely
// formatted scraped text into usable fields.
//
// Raw scraped records arrive with per-source field names (capitalized,
// lowercase, or aliased); Normalize maps them onto a fixed set of canonical
// fields so downstream components only ever deal with one shape. ExtractDate
// and ExtractTime pull dates and times out of free text using an ordered list
// of patterns, and WithinHorizon rejects resolved dates so far in the future
// that they are almost certainly parse errors.
package event
