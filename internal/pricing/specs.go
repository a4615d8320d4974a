package pricing

import (
	"strings"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// ResolveTechnicalSpecs reads the format and size labels of the asset variant
func ResolveTechnicalSpecs(asset domain.AssetSnapshot) (format, size string) {
	for _, a := range asset.Attributes {
		name := Normalize(a.Attribute)
		switch {
		case format == "" && containsAny(name, formatAttributeTerms):
			format = strings.TrimSpace(a.Value)
		case size == "" && containsAny(name, sizeAttributeTerms):
			size = strings.TrimSpace(a.Value)
		}
	}
	return format, size
}

// InferSite guesses the site from a location or venue attribute of the asset,
// used to pre-fill the selection when an asset is picked
func InferSite(asset domain.AssetSnapshot) (domain.Site, bool) {
	for _, a := range asset.Attributes {
		if !containsAny(Normalize(a.Attribute), siteAttributeTerms) {
			continue
		}
		value := Normalize(a.Value)
		switch {
		case strings.Contains(value, "viva"):
			return domain.SiteViva, true
		case strings.Contains(value, "buenavista"):
			return domain.SiteBuenavista, true
		case strings.Contains(value, "mallplaza"):
			return domain.SiteMallplaza, true
		case strings.Contains(value, "unico"):
			return domain.SiteUnico, true
		case strings.Contains(value, "plaza") && strings.Contains(value, "central"):
			return domain.SitePlazaCentral, true
		}
	}
	return "", false
}
