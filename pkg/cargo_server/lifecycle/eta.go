package lifecycle

import (
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
)

// TransitTimes is the number of days a delivery mode is expected to take from
// dispatch to arrival in the destination country. It is the single source of
// truth for ETA computation.
type TransitTimes map[model.DeliveryMode]int

func DefaultTransitTimes() TransitTimes {
	return TransitTimes{
		model.DeliveryModeAir:        20,
		model.DeliveryModeSea:        75,
		model.DeliveryModeRail:       45,
		model.DeliveryModeMultimodal: 60,
	}
}

// Estimate returns the dispatch date plus the fixed offset of the mode.
func (t TransitTimes) Estimate(mode model.DeliveryMode, dispatchedAt time.Time) time.Time {
	return dispatchedAt.AddDate(0, 0, t[mode])
}
