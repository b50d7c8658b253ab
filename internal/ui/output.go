package ui

import "fmt"

// Status symbols prefixed to feedback lines. Colour is left to the terminal so
// the lines stay readable when piped.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

func status(symbol, msg string) string {
	return symbol + " " + msg
}

// Success marks command feedback that changed or showed the book.
func Success(msg string) string { return status(SymbolSuccess, msg) }

func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error marks a rejected command.
func Error(msg string) string { return status(SymbolError, msg) }

// Warning marks a problem that did not stop the command, such as a failed save.
func Warning(msg string) string { return status(SymbolWarning, msg) }

func Warningf(format string, args ...interface{}) string {
	return Warning(fmt.Sprintf(format, args...))
}

func Info(msg string) string { return status(SymbolInfo, msg) }

func Infof(format string, args ...interface{}) string {
	return Info(fmt.Sprintf(format, args...))
}

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Count renders "(1 person)" or "(3 persons)".
func Count(n int, singular, plural string) string {
	noun := plural
	if n == 1 {
		noun = singular
	}
	return fmt.Sprintf("(%d %s)", n, noun)
}
