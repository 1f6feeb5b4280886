package trackno

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
)

// Decoded is the structured form of a shipment track number.
type Decoded struct {
	BatchNumber string             `json:"batch_number"`
	ClientCode  string             `json:"client_code"`
	Mode        model.DeliveryMode `json:"mode"`
	OrderNumber string             `json:"order_number"` // Zero padded 4-digit sequence.
}

// Encode renders the canonical track number
// "<batchNumber>-<clientCode><modeLetter><orderNumber>". The order number is
// zero padded to 4 digits.
func Encode(batchNumber, clientCode string, mode model.DeliveryMode, orderNumber int) string {
	return fmt.Sprintf("%s-%s%s%04d", batchNumber, clientCode, mode.Letter(), orderNumber)
}

// decodeStrategy is one parse attempt in the ordered fallback chain. The
// chain exists because historical records were produced by earlier, less
// regular formats. A strategy either confidently produces a Decoded or
// declines; the chain never guesses.
type decodeStrategy struct {
	name string
	fn   func(trackNumber string) (Decoded, bool)
}

var strictPattern = regexp.MustCompile(`^(\d+)-(\d+)([A-Z])(\d{4})$`)
var dashedPattern = regexp.MustCompile(`^(\d+)-(\d+)([A-Z])-(\d{4})$`)
var trailingRunPattern = regexp.MustCompile(`^(\d+)-(.*?)([A-Za-z])[ -]?(\d{4})$`)
var trailingDigits = regexp.MustCompile(`(\d+)\D*$`)

var decodeStrategies = []decodeStrategy{
	{name: "strict", fn: decodeWithPattern(strictPattern)},
	{name: "dashed", fn: decodeWithPattern(dashedPattern)},
	{name: "trailing_run", fn: decodeTrailingRun},
}

func decodeWithPattern(pattern *regexp.Regexp) func(string) (Decoded, bool) {
	return func(trackNumber string) (Decoded, bool) {
		groups := pattern.FindStringSubmatch(trackNumber)
		if groups == nil {
			return Decoded{}, false
		}
		mode, ok := model.DeliveryModeFromLetter(groups[3])
		if !ok {
			return Decoded{}, false
		}
		return Decoded{
			BatchNumber: groups[1],
			ClientCode:  groups[2],
			Mode:        mode,
			OrderNumber: groups[4],
		}, true
	}
}

// decodeTrailingRun extracts a trailing 4-digit run and works backwards: the
// letter right before the run is the mode letter, the digit run before the
// letter is the client code.
func decodeTrailingRun(trackNumber string) (Decoded, bool) {
	groups := trailingRunPattern.FindStringSubmatch(trackNumber)
	if groups == nil {
		return Decoded{}, false
	}
	mode, ok := model.DeliveryModeFromLetter(strings.ToUpper(groups[3]))
	if !ok {
		return Decoded{}, false
	}
	clientGroups := trailingDigits.FindStringSubmatch(groups[2])
	if clientGroups == nil {
		return Decoded{}, false
	}
	return Decoded{
		BatchNumber: groups[1],
		ClientCode:  clientGroups[1],
		Mode:        mode,
		OrderNumber: groups[4],
	}, true
}

// Decode parses a track number through the ordered strategy chain. It fails
// closed: a track number no strategy can confidently parse yields
// model.ErrTrackNumberDecode and the caller must leave the record untouched.
func Decode(trackNumber string) (Decoded, error) {
	for _, strategy := range decodeStrategies {
		if decoded, ok := strategy.fn(trackNumber); ok {
			return decoded, nil
		}
	}
	return Decoded{}, fmt.Errorf("%q%w", trackNumber, model.ErrTrackNumberDecode)
}

// ReEncodeForModeChange substitutes the mode letter of a track number,
// normalizing it to the canonical format in the process.
func ReEncodeForModeChange(trackNumber string, newMode model.DeliveryMode) (string, error) {
	decoded, err := Decode(trackNumber)
	if err != nil {
		return "", err
	}
	orderNumber, err := strconv.Atoi(decoded.OrderNumber)
	if err != nil {
		return "", fmt.Errorf("%q%w", trackNumber, model.ErrTrackNumberDecode)
	}
	return Encode(decoded.BatchNumber, decoded.ClientCode, newMode, orderNumber), nil
}

// ItemTrackNumber derives the track number of one physical piece.
func ItemTrackNumber(shipmentTrackNumber string, placeNumber int) string {
	return fmt.Sprintf("%s-%d", shipmentTrackNumber, placeNumber)
}

// InvoiceNumberBase strips the leading batch segment from a shipment track
// number and prefixes "INV-". Collision handling is up to the invoice
// generator.
func InvoiceNumberBase(shipmentTrackNumber string) string {
	_, rest, found := strings.Cut(shipmentTrackNumber, "-")
	if !found {
		rest = shipmentTrackNumber
	}
	return "INV-" + rest
}
