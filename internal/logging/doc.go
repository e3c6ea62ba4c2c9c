// Package logging provides structured logging built on Zap, with
// context-aware correlation fields (trace, span and request identifiers)
// and an observed test logger.
package logging
