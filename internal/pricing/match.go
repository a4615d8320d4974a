package pricing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Catalog attribute names are free text, in Spanish or English
var (
	locationAttributeTerms = []string{"location", "ubicacion"}
	contentAttributeTerms  = []string{"type", "content", "tipo", "contenido"}
	siteAttributeTerms     = []string{"location", "ubicacion", "site", "centro"}
	formatAttributeTerms   = []string{"format", "formato"}
	sizeAttributeTerms     = []string{"size", "tamano"}
	videoValueTerm         = "video"
)

// Normalize lowercases, strips accents and collapses whitespace
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// containsAny reports whether the normalized text contains one of the terms
func containsAny(normalized string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}

// IsLocationAttribute reports whether the attribute describes the zone of the asset
func IsLocationAttribute(name string) bool {
	return containsAny(Normalize(name), locationAttributeTerms)
}

// IsContentAttribute reports whether the attribute describes the content type
func IsContentAttribute(name string) bool {
	return containsAny(Normalize(name), contentAttributeTerms)
}

// MatchesZone reports whether a catalog value names the selected zone: the value
// is a substring of, or contains, one of the zone's terms. Empty values never match.
func MatchesZone(value string, zone domain.Zone) bool {
	v := Normalize(value)
	if v == "" {
		return false
	}
	for _, term := range zone.MatchTerms() {
		t := Normalize(term)
		if t == "" {
			continue
		}
		if strings.Contains(t, v) || strings.Contains(v, t) {
			return true
		}
	}
	return false
}

// MatchesVideo reports whether a catalog value describes video content
func MatchesVideo(value string) bool {
	return strings.Contains(Normalize(value), videoValueTerm)
}

// MatchZone returns the first location triple whose value names the zone.
// First match wins; later matches are ignored.
func MatchZone(attrs []domain.AttributeValue, zone domain.Zone) (domain.AttributeValue, bool) {
	if zone == "" {
		return domain.AttributeValue{}, false
	}
	for _, a := range attrs {
		if IsLocationAttribute(a.Attribute) && MatchesZone(a.Value, zone) {
			return a, true
		}
	}
	return domain.AttributeValue{}, false
}

// MatchContent returns every content triple describing video when video is selected
func MatchContent(attrs []domain.AttributeValue, content domain.ContentType) []domain.AttributeValue {
	if content != domain.ContentVideo {
		return nil
	}
	var matched []domain.AttributeValue
	for _, a := range attrs {
		if IsContentAttribute(a.Attribute) && MatchesVideo(a.Value) {
			matched = append(matched, a)
		}
	}
	return matched
}
