// Package translate renders user visible strings through a message printer
// matched against the host locale.
package translate

import (
	"log/slog"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host reports no locale at all.
const DEFAULT_LOCALE = "en-US"

var (
	printerOnce  sync.Once
	printerMutex sync.RWMutex
	printer      *message.Printer
)

func hostPrinter() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			slog.Debug("translate: locale", "error", err)
		}

		if len(locales) == 0 {
			locales = []string{DEFAULT_LOCALE}
		}

		printerMutex.Lock()
		printer = message.NewPrinter(message.MatchLanguage(locales...))
		printerMutex.Unlock()
	})

	printerMutex.RLock()
	defer printerMutex.RUnlock()

	return printer
}

// Use forces the printer language, bypassing host locale detection.
func Use(tag language.Tag) {
	hostPrinter()

	printerMutex.Lock()
	printer = message.NewPrinter(tag)
	printerMutex.Unlock()
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return hostPrinter().Sprintf(key, args...)
}
