// Package cache persists translations keyed by source language and source
// text. All backends hold their contents in memory during a run and write
// them back on Flush, so lookups never touch the disk or the network.
package cache
