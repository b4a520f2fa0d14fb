// Package translation translates text to English through external providers.
// A Translator combines a primary and a fallback provider with the
// translation cache, cleans provider output into a short phrase and paces
// requests with a fixed delay.
package translation
