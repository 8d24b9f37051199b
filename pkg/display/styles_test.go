package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nchaloult/passgen/pkg/strength"
)

func TestPlainStylesRenderVerbatim(t *testing.T) {
	s := NewStyles(false)

	for _, tier := range strength.Tiers() {
		assert.Equal(t, tier.String(), s.Tier(tier))
	}
	assert.Equal(t, "h3ll0 World", s.Value.Render("h3ll0 World"))
}

func TestColoredStylesKeepText(t *testing.T) {
	s := NewStyles(true)

	// Whether escape codes are emitted depends on the terminal; the text
	// itself must always survive.
	for _, tier := range strength.Tiers() {
		assert.Contains(t, s.Tier(tier), tier.String())
	}
}

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, "Generated Passphrase:", MessagesFor("en").Generated)
	assert.Equal(t, "Fraseclave Generada:", MessagesFor("es").Generated)
	assert.Equal(t, MessagesFor("en"), MessagesFor("fr"))
}

func TestPromptIsAFullSentence(t *testing.T) {
	assert.Equal(t, "Enter the passphrase to assess:", MessagesFor("en").Prompt)
	assert.Equal(t, "Introduce la fraseclave a evaluar:", MessagesFor("es").Prompt)
}
