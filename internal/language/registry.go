// Package language maps human-readable language names to the two-letter codes
// the translation providers expect.
package language

import (
	"sort"
	"strings"
)

// Auto asks the provider to detect the source language.
const Auto = "auto"

// English is the fixed target language.
const English = "en"

var codes = map[string]string{
	"assamese":  "as",
	"bengali":   "bn",
	"spanish":   "es",
	"hindi":     "hi",
	"marathi":   "mr",
	"tamil":     "ta",
	"telugu":    "te",
	"gujarati":  "gu",
	"kannada":   "kn",
	"malayalam": "ml",
	"odia":      "or",
	"punjabi":   "pa",
	"urdu":      "ur",
	"nepali":    "ne",
}

// Code returns the provider code for a language name, or Auto when unknown.
func Code(name string) string {
	if code, ok := codes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	return Auto
}

// Names returns the known language names in sorted order.
func Names() []string {
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
