package tally

import "github.com/rs/zerolog"

// logger receives the debug traces of ledger file operations. It is silent
// until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger sets the logger used by the package.
func SetLogger(l zerolog.Logger) { logger = l }
