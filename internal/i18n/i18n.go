// Package i18n holds the user-facing strings of the app in every supported
// language.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key. Counts are passed as
// pre-formatted strings so they print without locale digit grouping.
const (
	AppTitle            = "Dessert Clicker"
	DessertsSold        = "Desserts sold"
	TotalRevenue        = "Total revenue"
	Revenue             = "%s %s"
	Share               = "Share"
	ShareSummary        = "I've sold %s desserts for a total of %s %s #DessertClicker"
	SharingNotAvailable = "Sharing not available"
	SummaryCopied       = "Summary copied to clipboard"
	FileMenu            = "File"
	Quit                = "Quit"
)

var supported = []language.Tag{language.English, language.Spanish}

var spanish = map[string]string{
	AppTitle:            "Clic de Postres",
	DessertsSold:        "Postres vendidos",
	TotalRevenue:        "Ingresos totales",
	Share:               "Compartir",
	ShareSummary:        "He vendido %s postres por un total de %s %s #DessertClicker",
	SharingNotAvailable: "Compartir no está disponible",
	SummaryCopied:       "Resumen copiado al portapapeles",
	FileMenu:            "Archivo",
	Quit:                "Salir",
}

var (
	builder = newBuilder()
	matcher = language.NewMatcher(supported)
)

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range spanish {
		if err := b.SetString(language.Spanish, key, text); err != nil {
			panic(fmt.Sprintf("register %q: %v", key, err))
		}
	}
	return b
}

// Match returns the supported language closest to name, English when nothing
// matches.
func Match(name string) language.Tag {
	tag, err := language.Parse(name)
	if err != nil {
		return language.English
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// Supported reports whether name is a well-formed tag that matches one of the
// app's languages.
func Supported(name string) bool {
	tag, err := language.Parse(name)
	if err != nil {
		return false
	}
	_, _, confidence := matcher.Match(tag)
	return confidence != language.No
}

// Printer returns a message printer for the language closest to name.
func Printer(name string) *message.Printer {
	return message.NewPrinter(Match(name), message.Catalog(builder))
}
