// Package logging builds the zap logger shared by the predtrans packages.
package logging
