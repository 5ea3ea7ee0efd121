package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold elimina los acentos de s ("lámpara" -> "lampara"). Se usa para que la
// búsqueda de productos no distinga tildes del lado del término.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// Clean normaliza entrada de usuario antes de persistirla: espacios recortados
// y forma Unicode compuesta (NFC) para que las comparaciones en BD sean estables.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
