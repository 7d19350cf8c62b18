package errorhandler

import (
	"log"
	"sync"

	"github.com/csskit/csskit/token"
)

// Throwing escalates every fault into an abort. Use it to validate input
// that must be perfect.
type Throwing struct{}

// NewThrowing returns a handler that aborts on every fault.
func NewThrowing() *Throwing { return &Throwing{} }

func (h *Throwing) OnParseError(err *SyntaxError, lastSkipped *token.Token) Decision {
	return Abort
}

func (h *Throwing) OnUnexpectedRule(tok *token.Token, rule, msg string) Decision {
	return Abort
}

func (h *Throwing) OnBrowserCompliantSkip(err *SyntaxError, from, to *token.Token) Decision {
	return Abort
}

func (h *Throwing) OnIllegalCharacter(ch rune) Decision { return Abort }

// Collecting records every fault in a thread-safe list and lets parsing
// continue. Create one per parse call; the list may be read concurrently
// after the parse returns.
type Collecting struct {
	mu     sync.RWMutex
	errors []*ParseError
}

// NewCollecting returns an empty collecting handler.
func NewCollecting() *Collecting { return &Collecting{} }

func (h *Collecting) add(pe *ParseError) {
	h.mu.Lock()
	h.errors = append(h.errors, pe)
	h.mu.Unlock()
}

func (h *Collecting) OnParseError(err *SyntaxError, lastSkipped *token.Token) Decision {
	h.add(newParseError(err, lastSkipped))
	return SkipAndResume
}

func (h *Collecting) OnUnexpectedRule(tok *token.Token, rule, msg string) Decision {
	h.add(&ParseError{Message: renderUnexpectedRule(tok, rule, msg)})
	return Continue
}

func (h *Collecting) OnBrowserCompliantSkip(err *SyntaxError, from, to *token.Token) Decision {
	h.add(&ParseError{
		Message:           renderBrowserCompliantSkip(err, from, to),
		FirstSkippedToken: newPosition(from),
		LastSkippedToken:  newPosition(to),
	})
	return Continue
}

func (h *Collecting) OnIllegalCharacter(ch rune) Decision {
	h.add(&ParseError{Message: renderIllegalCharacter(ch)})
	return Continue
}

// HasParseErrors reports whether any fault was recorded.
func (h *Collecting) HasParseErrors() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.errors) > 0
}

// ParseErrorCount returns the number of recorded faults.
func (h *Collecting) ParseErrorCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.errors)
}

// ParseErrors returns a copy of the recorded faults in insertion order.
func (h *Collecting) ParseErrors() []*ParseError {
	h.mu.RLock()
	defer h.mu.RUnlock()
	errs := make([]*ParseError, len(h.errors))
	copy(errs, h.errors)
	return errs
}

// Logging writes every fault to a logger and lets parsing continue. It is
// stateless.
type Logging struct {
	logger *log.Logger
}

// NewLogging returns a handler logging to logger.
func NewLogging(logger *log.Logger) *Logging { return &Logging{logger: logger} }

func (h *Logging) OnParseError(err *SyntaxError, lastSkipped *token.Token) Decision {
	h.logger.Println(renderParseError(err, lastSkipped))
	return SkipAndResume
}

func (h *Logging) OnUnexpectedRule(tok *token.Token, rule, msg string) Decision {
	h.logger.Println(renderUnexpectedRule(tok, rule, msg))
	return Continue
}

func (h *Logging) OnBrowserCompliantSkip(err *SyntaxError, from, to *token.Token) Decision {
	h.logger.Println(renderBrowserCompliantSkip(err, from, to))
	return Continue
}

func (h *Logging) OnIllegalCharacter(ch rune) Decision {
	h.logger.Println(renderIllegalCharacter(ch))
	return Continue
}

// Silent ignores every fault and lets parsing continue.
type Silent struct{}

// NewSilent returns a handler that records nothing.
func NewSilent() *Silent { return &Silent{} }

func (h *Silent) OnParseError(err *SyntaxError, lastSkipped *token.Token) Decision {
	return SkipAndResume
}

func (h *Silent) OnUnexpectedRule(tok *token.Token, rule, msg string) Decision {
	return Continue
}

func (h *Silent) OnBrowserCompliantSkip(err *SyntaxError, from, to *token.Token) Decision {
	return Continue
}

func (h *Silent) OnIllegalCharacter(ch rune) Decision { return Continue }

// Chain invokes several handlers in order for every fault and returns
// the most severe decision any of them made.
type Chain struct {
	handlers []Handler
}

// NewChain returns a handler invoking all passed handlers in order.
func NewChain(handlers ...Handler) *Chain { return &Chain{handlers: handlers} }

func worst(a, b Decision) Decision {
	if b > a {
		return b
	}
	return a
}

func (h *Chain) OnParseError(err *SyntaxError, lastSkipped *token.Token) Decision {
	d := Continue
	for _, sub := range h.handlers {
		d = worst(d, sub.OnParseError(err, lastSkipped))
	}
	return d
}

func (h *Chain) OnUnexpectedRule(tok *token.Token, rule, msg string) Decision {
	d := Continue
	for _, sub := range h.handlers {
		d = worst(d, sub.OnUnexpectedRule(tok, rule, msg))
	}
	return d
}

func (h *Chain) OnBrowserCompliantSkip(err *SyntaxError, from, to *token.Token) Decision {
	d := Continue
	for _, sub := range h.handlers {
		d = worst(d, sub.OnBrowserCompliantSkip(err, from, to))
	}
	return d
}

func (h *Chain) OnIllegalCharacter(ch rune) Decision {
	d := Continue
	for _, sub := range h.handlers {
		d = worst(d, sub.OnIllegalCharacter(ch))
	}
	return d
}

// LoggingInterpret logs semantic-level problems found while building the
// object model.
type LoggingInterpret struct {
	logger *log.Logger
}

// NewLoggingInterpret returns an interpret handler logging to logger.
func NewLoggingInterpret(logger *log.Logger) *LoggingInterpret {
	return &LoggingInterpret{logger: logger}
}

func (h *LoggingInterpret) OnInterpretationError(msg string) {
	h.logger.Println("interpretation error: " + msg)
}

func (h *LoggingInterpret) OnInterpretationWarning(msg string) {
	h.logger.Println("interpretation warning: " + msg)
}

// SilentInterpret discards semantic-level problems.
type SilentInterpret struct{}

// NewSilentInterpret returns an interpret handler that records nothing.
func NewSilentInterpret() *SilentInterpret { return &SilentInterpret{} }

func (h *SilentInterpret) OnInterpretationError(msg string)   {}
func (h *SilentInterpret) OnInterpretationWarning(msg string) {}
