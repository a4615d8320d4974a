package availability

import (
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Overlaps reports whether two date ranges share at least one day.
// Bounds are inclusive: a range ending the day another starts overlaps it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = domain.DateOnly(aStart), domain.DateOnly(aEnd)
	bStart, bEnd = domain.DateOnly(bStart), domain.DateOnly(bEnd)
	return !bStart.After(aEnd) && !bEnd.Before(aStart)
}
