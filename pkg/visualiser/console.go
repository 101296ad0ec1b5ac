// Package visualiser defines the contract a renderer of an alpacalert
// Service must expose to the core, plus a reference console
// implementation used to exercise that contract end-to-end.
package visualiser

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
)

// Visualiser renders a Service. The core only guarantees that a
// Service is a Scanner and that Status/Children can be called
// recursively without side effects other than the cache reads the
// Kubernetes facade performs.
type Visualiser interface {
	Visualise(service alpacalert.Scanner) string
}

// Show selects which nodes the Console Visualiser prints.
type Show int

const (
	ShowAll Show = iota
	ShowOnlyFailing
)

// Symbols maps each State to the glyph the Console Visualiser prints
// for it.
type Symbols map[alpacalert.State]string

// DefaultSymbols renders states as their lowercase names, matching
// alpacalert.State.String().
func DefaultSymbols() Symbols {
	return MkSymbols("passing", "failing", "unknown")
}

// MkSymbols builds a Symbols map from the three glyphs, in State order.
func MkSymbols(passing, failing, unknown string) Symbols {
	return Symbols{
		alpacalert.Passing: passing,
		alpacalert.Failing: failing,
		alpacalert.Unknown: unknown,
	}
}

// Console renders a Scanner tree as indented, tab-nested text: one
// line per node ("<symbol> : <name>"), followed by that node's own log
// lines, then its children at one deeper indent.
type Console struct {
	Symbols Symbols
	Show    Show
	Logger  logr.Logger
}

// NewConsole returns a Console Visualiser with the default symbol set
// and ShowAll.
func NewConsole(logger logr.Logger) *Console {
	return &Console{Symbols: DefaultSymbols(), Show: ShowAll, Logger: logger}
}

// Visualise renders service and its descendants, one line per node
// plus one per log message, terminated by a trailing newline.
func (c *Console) Visualise(service alpacalert.Scanner) string {
	lines := c.visualiseScanner(service, 0)
	return strings.Join(lines, "\n") + "\n"
}

func (c *Console) visualiseLog(log alpacalert.Log, indent int) string {
	return fmt.Sprintf("%s- %s: %s", strings.Repeat("\t", indent), log.Severity, log.Message)
}

func (c *Console) visualiseScanner(scanner alpacalert.Scanner, indent int) []string {
	status := c.safeStatus(scanner)

	if c.Show == ShowOnlyFailing && status.State == alpacalert.Passing {
		return nil
	}

	indentS := strings.Repeat("\t", indent)
	this := fmt.Sprintf("%s%s : %s", indentS, c.Symbols[status.State], scanner.Name())

	lines := make([]string, 0, 1+len(status.Messages))
	lines = append(lines, this)
	for _, log := range status.Messages {
		lines = append(lines, c.visualiseLog(log, indent))
	}
	for _, child := range scanner.Children() {
		lines = append(lines, c.visualiseScanner(child, indent+1)...)
	}
	return lines
}

// safeStatus evaluates scanner.Status(), recovering from a panic the
// way the spec requires the Visualiser to catch any exception raised
// during its walk: it synthesizes an UNKNOWN Status carrying an ERROR
// log identifying the offending node.
func (c *Console) safeStatus(scanner alpacalert.Scanner) (status alpacalert.Status) {
	defer func() {
		if r := recover(); r != nil {
			message := fmt.Sprintf("unable to get status for %s (%T): %v", scanner.Name(), scanner, r)
			c.Logger.Error(fmt.Errorf("%v", r), "scanner panicked during status walk", "scanner", scanner.Name())
			status = alpacalert.Status{
				State:    alpacalert.Unknown,
				Messages: []alpacalert.Log{{Message: message, Severity: alpacalert.SeverityError}},
			}
		}
	}()
	return scanner.Status()
}
