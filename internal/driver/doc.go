// Package driver runs the file processor over every configured
// language and file type combination.
//
// Input files follow the naming convention
//
//	{root}/predictions-{language}-{file_type}.jsonl
//
// and each produces
//
//	{root}/predictions-{language}-{file_type}-translated.jsonl
//
// Missing inputs are skipped with a warning. Any other error stops the run.
package driver
