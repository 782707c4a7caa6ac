/*
Package hstore – logging interface.
*/
package hstore

import (
	"encoding/json"
	"log"
)

// Logger is the interface callers may supply to Register. Each method
// receives a structured context map (may be nil).
type Logger interface {
	Trace(message string, ctx map[string]any)
	Info(message string, ctx map[string]any)
	Error(message string, ctx map[string]any)
}

// defaultLogger writes info/error to the standard library logger and
// silently drops trace.
type defaultLogger struct{}

func (defaultLogger) Trace(string, map[string]any) {}

func (defaultLogger) Info(msg string, ctx map[string]any) {
	logLine("INFO", msg, ctx)
}

func (defaultLogger) Error(msg string, ctx map[string]any) {
	logLine("ERROR", msg, ctx)
}

func logLine(level, msg string, ctx map[string]any) {
	if ctx == nil {
		log.Printf("[%s] %s", level, msg)
		return
	}
	b, err := json.Marshal(ctx)
	if err != nil {
		log.Printf("[%s] %s %v", level, msg, ctx)
		return
	}
	log.Printf("[%s] %s %s", level, msg, b)
}

// NopLogger silently discards everything.
type NopLogger struct{}

func (NopLogger) Trace(string, map[string]any) {}
func (NopLogger) Info(string, map[string]any)  {}
func (NopLogger) Error(string, map[string]any) {}

// FuncLogger wraps a plain function: func(level, message string, ctx map[string]any).
type FuncLogger struct {
	Fn func(level, message string, ctx map[string]any)
}

func (f FuncLogger) Trace(msg string, ctx map[string]any) { f.Fn("trace", msg, ctx) }
func (f FuncLogger) Info(msg string, ctx map[string]any)  { f.Fn("info", msg, ctx) }
func (f FuncLogger) Error(msg string, ctx map[string]any) { f.Fn("error", msg, ctx) }
