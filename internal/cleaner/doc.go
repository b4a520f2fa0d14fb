// Package cleaner reduces free-text answers and provider translations to a
// short head word or phrase. The rules are heuristics, not a grammar: inputs
// with several clauses may be truncated more than a human would.
package cleaner
