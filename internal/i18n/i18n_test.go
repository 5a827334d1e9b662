package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match("en"))
	assert.Equal(t, language.English, Match("en-GB"))
	assert.Equal(t, language.Spanish, Match("es"))
	assert.Equal(t, language.Spanish, Match("es-MX"))
	assert.Equal(t, language.English, Match("ja"))
	assert.Equal(t, language.English, Match("not a tag!"))
}

func TestPrinter(t *testing.T) {
	assert.Equal(t, "Desserts sold", Printer("en").Sprintf(DessertsSold))
	assert.Equal(t, "Postres vendidos", Printer("es").Sprintf(DessertsSold))
	assert.Equal(t, "Dessert Clicker", Printer("fr").Sprintf(AppTitle))
}

func TestEverySpanishKeyIsKnown(t *testing.T) {
	keys := []string{AppTitle, DessertsSold, TotalRevenue, Share, ShareSummary,
		SharingNotAvailable, SummaryCopied, FileMenu, Quit}

	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}
	for k := range spanish {
		assert.True(t, known[k], "unknown key %q", k)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("en-US"))
	assert.True(t, Supported("es-419"))
	assert.False(t, Supported("fr"))
	assert.False(t, Supported("ja"))
	assert.False(t, Supported("!!"))
}
