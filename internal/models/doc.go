// Package models lists the OpenAI models available to an API key and
// highlights the chat models the openai translation provider can use.
package models
