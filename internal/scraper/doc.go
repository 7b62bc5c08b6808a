// Package scraper provides HTTP fetching and text extraction for
// calendar-style event listing pages.
//
// Listing pages of interest rarely expose structured event markup; they are
// long articles that group event paragraphs under date headings. The scraper
// fetches the page, takes the main content text, segments it on date
// headings, and emits one raw record per qualifying paragraph, using the
// event package's date/time heuristics along the way. Records are produced
// in the source-native field shape and handed to the import pipeline's
// normalizer like any other source.
package scraper
