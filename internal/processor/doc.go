// Package processor runs the per-file pipeline: it reads prediction records
// line by line, cleans and translates their answers, writes the enriched
// records and checkpoints the translation cache as it goes.
//
// Output records keep the input field order; CleanedAnswer, TranslatedAnswer
// and TranslatedAnswerList are appended unless the input already has them.
//
// Blank lines are skipped rather than rejected, so a trailing empty line or
// a hand-edited file does not abort a run. Any other line that is not a JSON
// object fails the file.
package processor
