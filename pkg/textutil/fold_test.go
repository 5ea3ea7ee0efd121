package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factora/pos-api/pkg/textutil"
)

func TestFold_EliminaAcentos(t *testing.T) {
	cases := map[string]string{
		"lámpara":      "lampara",
		"Lámpara LED":  "Lampara LED",
		"cañón":        "canon",
		"Ñoño":         "Nono",
		"café único":   "cafe unico",
		"sin acentos":  "sin acentos",
		"":             "",
		"número 123-ç": "numero 123-c",
	}
	for in, want := range cases {
		assert.Equal(t, want, textutil.Fold(in), "Fold(%q)", in)
	}
}

func TestClean_RecortaYNormaliza(t *testing.T) {
	assert.Equal(t, "café", textutil.Clean("  café  "))
	// "café" con la e y el acento como codepoints separados (NFD) debe quedar
	// en forma compuesta (NFC)
	decomposed := "café"
	assert.Equal(t, "café", textutil.Clean(decomposed))
	assert.Equal(t, "", textutil.Clean("   "))
}
