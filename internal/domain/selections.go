package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ContentType is the kind of content exhibited on the asset
type ContentType string

const (
	ContentStatic ContentType = "static"
	ContentVideo  ContentType = "video"
)

var contentTypeLabels = map[ContentType]string{
	ContentStatic: "Static",
	ContentVideo:  "Video",
}

// Site is the venue hosting the asset
type Site string

const (
	SiteViva         Site = "viva"
	SiteBuenavista   Site = "buenavista"
	SiteMallplaza    Site = "mallplaza"
	SiteUnico        Site = "unico"
	SitePlazaCentral Site = "plaza_central"
)

var siteLabels = map[Site]string{
	SiteViva:         "Viva",
	SiteBuenavista:   "Buenavista",
	SiteMallplaza:    "Mallplaza",
	SiteUnico:        "Unico",
	SitePlazaCentral: "Plaza Central",
}

// AllSites lists sites in a stable order
var AllSites = []Site{SiteViva, SiteBuenavista, SiteMallplaza, SiteUnico, SitePlazaCentral}

// Zone is the macro-location of the asset inside a site
type Zone string

const (
	ZoneFacade    Zone = "facade"
	ZoneEntrance  Zone = "entrance"
	ZoneCorridor  Zone = "corridor"
	ZoneFoodCourt Zone = "food_court"
)

var zoneLabels = map[Zone]string{
	ZoneFacade:    "Facade",
	ZoneEntrance:  "Entrance",
	ZoneCorridor:  "Corridor",
	ZoneFoodCourt: "Food Court",
}

// zoneCatalogAliases are the names the inventory catalog uses for each zone
var zoneCatalogAliases = map[Zone][]string{
	ZoneFacade:    {"fachada"},
	ZoneEntrance:  {"entrada"},
	ZoneCorridor:  {"pasillo"},
	ZoneFoodCourt: {"plazoleta", "plazoleta de comidas"},
}

// Duration is the booked period in months
type Duration int

const (
	Duration3  Duration = 3
	Duration6  Duration = 6
	Duration12 Duration = 12
	Duration24 Duration = 24
)

// AllDurations lists the bookable durations
var AllDurations = []Duration{Duration3, Duration6, Duration12, Duration24}

// PaymentMethod is how the customer pays for the booking
type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "cash"
	PaymentAdvanceBalance PaymentMethod = "advance_balance"
	PaymentInstallments   PaymentMethod = "installments"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentCash:           "Cash",
	PaymentAdvanceBalance: "Advance + Balance",
	PaymentInstallments:   "Installments",
}

// ParseContentType validates a content type key
func ParseContentType(s string) (ContentType, error) {
	c := ContentType(strings.TrimSpace(s))
	if _, ok := contentTypeLabels[c]; !ok {
		return "", fmt.Errorf("%w: content type %q", ErrUnknownSelection, s)
	}
	return c, nil
}

// Label returns the human label of the content type
func (c ContentType) Label() string { return contentTypeLabels[c] }

// ParseSite validates a site key
func ParseSite(s string) (Site, error) {
	site := Site(strings.TrimSpace(s))
	if _, ok := siteLabels[site]; !ok {
		return "", fmt.Errorf("%w: site %q", ErrUnknownSelection, s)
	}
	return site, nil
}

// Label returns the human label of the site
func (s Site) Label() string { return siteLabels[s] }

// ParseZone validates a zone key
func ParseZone(s string) (Zone, error) {
	z := Zone(strings.TrimSpace(s))
	if _, ok := zoneLabels[z]; !ok {
		return "", fmt.Errorf("%w: zone %q", ErrUnknownSelection, s)
	}
	return z, nil
}

// Label returns the human label of the zone
func (z Zone) Label() string { return zoneLabels[z] }

// MatchTerms returns every name the zone may appear under in the asset catalog:
// the label first, then catalog aliases
func (z Zone) MatchTerms() []string {
	label, ok := zoneLabels[z]
	if !ok {
		return nil
	}
	terms := []string{label}
	return append(terms, zoneCatalogAliases[z]...)
}

// ParseDuration validates the textual form of a duration ("3", "6", "12", "24")
func ParseDuration(s string) (Duration, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q", ErrUnknownSelection, s)
	}
	d := Duration(n)
	if !d.IsValid() {
		return 0, fmt.Errorf("%w: duration %q", ErrUnknownSelection, s)
	}
	return d, nil
}

// IsValid reports whether d is one of the bookable durations
func (d Duration) IsValid() bool {
	for _, v := range AllDurations {
		if d == v {
			return true
		}
	}
	return false
}

// Months returns the number of months, 0 when the duration is not set
func (d Duration) Months() int {
	if !d.IsValid() {
		return 0
	}
	return int(d)
}

// String returns the textual form of the duration
func (d Duration) String() string {
	if !d.IsValid() {
		return ""
	}
	return strconv.Itoa(int(d))
}

// Label returns the human label of the duration
func (d Duration) Label() string {
	if !d.IsValid() {
		return ""
	}
	return fmt.Sprintf("%d months", int(d))
}

// ParsePaymentMethod validates a payment method key
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.TrimSpace(s))
	if _, ok := paymentMethodLabels[m]; !ok {
		return "", fmt.Errorf("%w: payment method %q", ErrUnknownSelection, s)
	}
	return m, nil
}

// Label returns the human label of the payment method
func (m PaymentMethod) Label() string { return paymentMethodLabels[m] }
