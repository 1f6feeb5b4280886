package model

// ShipmentStatus is the lifecycle state of a shipment. The constants are
// listed in nominal forward order; StatusRank follows this order.
type ShipmentStatus string

const (
	ShipmentStatusCreated            ShipmentStatus = "CREATED"
	ShipmentStatusReceivedAtOrigin   ShipmentStatus = "RECEIVED_AT_ORIGIN"
	ShipmentStatusConsolidation      ShipmentStatus = "CONSOLIDATION"
	ShipmentStatusInTransit          ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusArrivedDestCountry ShipmentStatus = "ARRIVED_DESTINATION_COUNTRY"
	ShipmentStatusOnDestWarehouse    ShipmentStatus = "ON_DESTINATION_WAREHOUSE"
	ShipmentStatusDelivered          ShipmentStatus = "DELIVERED"
	ShipmentStatusArchived           ShipmentStatus = "ARCHIVED"
)

var shipmentStatusRank = map[ShipmentStatus]int{
	ShipmentStatusCreated:            0,
	ShipmentStatusReceivedAtOrigin:   1,
	ShipmentStatusConsolidation:      2,
	ShipmentStatusInTransit:          3,
	ShipmentStatusArrivedDestCountry: 4,
	ShipmentStatusOnDestWarehouse:    5,
	ShipmentStatusDelivered:          6,
	ShipmentStatusArchived:           7,
}

// Rank returns the position of the status in the nominal forward order.
// Unknown statuses rank below CREATED.
func (s ShipmentStatus) Rank() int {
	rank, ok := shipmentStatusRank[s]
	if !ok {
		return -1
	}
	return rank
}

// Terminal reports whether automatic advancement stops at this status.
// An operator can still force a transition out of a terminal status.
func (s ShipmentStatus) Terminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusArchived
}

func (s ShipmentStatus) Valid() bool {
	_, ok := shipmentStatusRank[s]
	return ok
}

// DeliveryMode is how a shipment travels. The single-letter form is embedded
// in track numbers.
type DeliveryMode string

const (
	DeliveryModeAir        DeliveryMode = "AIR"
	DeliveryModeSea        DeliveryMode = "SEA"
	DeliveryModeRail       DeliveryMode = "RAIL"
	DeliveryModeMultimodal DeliveryMode = "MULTIMODAL"
)

var deliveryModeLetters = map[DeliveryMode]string{
	DeliveryModeAir:        "A",
	DeliveryModeSea:        "S",
	DeliveryModeRail:       "R",
	DeliveryModeMultimodal: "M",
}

func (m DeliveryMode) Letter() string {
	return deliveryModeLetters[m]
}

func (m DeliveryMode) Valid() bool {
	_, ok := deliveryModeLetters[m]
	return ok
}

// DeliveryModeFromLetter returns the mode for a track number mode letter.
func DeliveryModeFromLetter(letter string) (DeliveryMode, bool) {
	for mode, l := range deliveryModeLetters {
		if l == letter {
			return mode, true
		}
	}
	return "", false
}

// Shipment is one freight unit moving through the fulfillment pipeline.
type Shipment struct {
	ID          string         `json:"id"`           // Unique ID of the Shipment.
	Version     int64          `json:"version"`      // Version of the Shipment.
	ClientID    string         `json:"client_id"`    // The client that owns the Shipment.
	ClientCode  string         `json:"client_code"`  // 4-digit client code embedded in the track number.
	TrackNumber string         `json:"track_number"` // Structured track number. Always decodes to the current batch and client code.
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location"`              // Human readable location, derived or operator supplied.
	RouteFrom   string         `json:"route_from"`            // Origin route text, e.g. country/warehouse code.
	RouteTo     string         `json:"route_to"`              // Destination route text.
	Mode        DeliveryMode   `json:"mode,omitempty"`        // Empty when the shipment inherits the batch mode.
	BatchNumber string         `json:"batch_number,omitempty"` // Batch the shipment belongs to, if any.
	OrderNumber int            `json:"order_number"`          // Sequence unique per client within the batch.

	ReceivedAt   *DateTime `json:"received_at,omitempty"`
	DispatchedAt *DateTime `json:"dispatched_at,omitempty"`
	DeliveredAt  *DateTime `json:"delivered_at,omitempty"`
	ETA          *DateTime `json:"eta,omitempty"` // Derived from the dispatch date and the mode transit time.

	PackingCost       Decimal `json:"packing_cost"`
	LocalDeliveryCost Decimal `json:"local_delivery_cost"`

	Items []ShipmentItem `json:"items,omitempty"`

	CreatedAt int64  `json:"created_at"` // Unix Time (in second) when the Shipment was created.
	CreatedBy string `json:"created_by"`
	UpdatedAt int64  `json:"updated_at"` // Unix Time (in second) when the Shipment was last updated.
	UpdatedBy string `json:"updated_by"`
}

// ActiveMode resolves the delivery mode of the shipment, falling back to the
// batch mode when the shipment has none.
func (s Shipment) ActiveMode(batchMode DeliveryMode) DeliveryMode {
	if s.Mode != "" {
		return s.Mode
	}
	return batchMode
}

// ShipmentItem is one physical piece within a shipment. The costing fields are
// carried through unchanged; only InsuranceCost and DeliveryCost participate
// in invoicing.
type ShipmentItem struct {
	PlaceNumber int    `json:"place_number"` // 1-based, contiguous within the shipment.
	TrackNumber string `json:"track_number"` // Shipment track number + "-" + place number.

	WeightKg         Decimal `json:"weight_kg"`
	VolumeM3         Decimal `json:"volume_m3"`
	TariffAmount     Decimal `json:"tariff_amount"`
	InsuredValue     Decimal `json:"insured_value"`
	InsurancePercent Decimal `json:"insurance_percent"`
	InsuranceCost    Decimal `json:"insurance_cost"` // insured value x insurance percent / 100, precomputed.
	DeliveryCost     Decimal `json:"delivery_cost"`
}

// BatchStatus is the aggregate status of a batch. Beside the forming states,
// cascade operations overwrite it with the last applied shipment status for
// display purposes.
type BatchStatus string

const (
	BatchStatusForming BatchStatus = "FORMING"
	BatchStatusFormed  BatchStatus = "FORMED"
)

// Batch is a named group of shipments sharing one shipping run.
type Batch struct {
	Number    string       `json:"number"`  // Zero padded 6-digit sequence number, e.g. "000123".
	Version   int64        `json:"version"` // Version of the Batch.
	Name      string       `json:"name"`
	Mode      DeliveryMode `json:"mode"`
	Status    BatchStatus  `json:"status"`
	CreatedAt int64        `json:"created_at"`
	CreatedBy string       `json:"created_by"`
	UpdatedAt int64        `json:"updated_at"`
	UpdatedBy string       `json:"updated_by"`
}

// StatusHistoryEntry is an append-only audit record of a status affecting
// operation. Entries are never edited or deleted.
type StatusHistoryEntry struct {
	ID          string         `json:"id"`
	ShipmentID  string         `json:"shipment_id"`
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	CreatedAt   int64          `json:"created_at"` // Unix Time (in second) when the entry was appended.
	CreatedBy   string         `json:"created_by"` // Acting operator, or "sweeper" for automatic updates.
}
