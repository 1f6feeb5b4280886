package lifecycle

import (
	"fmt"
	"strings"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
)

// OriginRegion is one configured origin warehouse region. RouteFrom text is
// matched against the keywords case-insensitively.
type OriginRegion struct {
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// LocationRules maps a shipment status and its routes to a human readable
// location label. The origin region table is configuration so new regions can
// be added without a code change; the first configured region is the default
// for unmatched route text.
type LocationRules struct {
	OriginRegions []OriginRegion `yaml:"origin_regions" json:"origin_regions"`
}

func DefaultLocationRules() LocationRules {
	return LocationRules{
		OriginRegions: []OriginRegion{
			{Label: "Guangzhou", Keywords: []string{"guangzhou", "gz", "canton"}},
			{Label: "Yiwu", Keywords: []string{"yiwu", "yw"}},
			{Label: "Shenzhen", Keywords: []string{"shenzhen", "sz"}},
			{Label: "Urumqi", Keywords: []string{"urumqi", "urm"}},
		},
	}
}

// Resolve returns the location label for a status. The mapping is pure and
// total: every status yields a label, possibly empty.
func (r LocationRules) Resolve(status model.ShipmentStatus, routeFrom string) string {
	switch status {
	case model.ShipmentStatusCreated:
		return ""
	case model.ShipmentStatusReceivedAtOrigin, model.ShipmentStatusConsolidation:
		return fmt.Sprintf("Origin warehouse, %s", r.OriginRegion(routeFrom))
	case model.ShipmentStatusInTransit:
		return "In transit"
	case model.ShipmentStatusArrivedDestCountry, model.ShipmentStatusOnDestWarehouse:
		return "Destination warehouse"
	case model.ShipmentStatusDelivered:
		return "Delivered"
	case model.ShipmentStatusArchived:
		return "Archived"
	default:
		return ""
	}
}

// OriginRegion infers the origin region from route text by case-insensitive
// keyword substring match. Unmatched input falls back to the first configured
// region.
func (r LocationRules) OriginRegion(routeFrom string) string {
	if len(r.OriginRegions) == 0 {
		return ""
	}

	needle := strings.ToLower(routeFrom)
	for _, region := range r.OriginRegions {
		for _, keyword := range region.Keywords {
			if keyword != "" && strings.Contains(needle, strings.ToLower(keyword)) {
				return region.Label
			}
		}
	}
	return r.OriginRegions[0].Label
}
