package trackno_test

import (
	"testing"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/trackno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "000123-7890A0002", trackno.Encode("000123", "7890", model.DeliveryModeAir, 2))
	assert.Equal(t, "000123-7890S0015", trackno.Encode("000123", "7890", model.DeliveryModeSea, 15))
	assert.Equal(t, "000001-0042R1234", trackno.Encode("000001", "0042", model.DeliveryModeRail, 1234))
	assert.Equal(t, "000000-7890M0001", trackno.Encode("000000", "7890", model.DeliveryModeMultimodal, 1))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		trackNumber string
		expected    trackno.Decoded
	}{
		{
			name:        "canonical",
			trackNumber: "000123-7890A0002",
			expected: trackno.Decoded{
				BatchNumber: "000123",
				ClientCode:  "7890",
				Mode:        model.DeliveryModeAir,
				OrderNumber: "0002",
			},
		},
		{
			name:        "dash before order number",
			trackNumber: "000123-7890S-0002",
			expected: trackno.Decoded{
				BatchNumber: "000123",
				ClientCode:  "7890",
				Mode:        model.DeliveryModeSea,
				OrderNumber: "0002",
			},
		},
		{
			name:        "lowercase mode letter",
			trackNumber: "000123-7890r0002",
			expected: trackno.Decoded{
				BatchNumber: "000123",
				ClientCode:  "7890",
				Mode:        model.DeliveryModeRail,
				OrderNumber: "0002",
			},
		},
		{
			name:        "space before order number",
			trackNumber: "000123-7890A 0002",
			expected: trackno.Decoded{
				BatchNumber: "000123",
				ClientCode:  "7890",
				Mode:        model.DeliveryModeAir,
				OrderNumber: "0002",
			},
		},
		{
			name:        "noisy client segment",
			trackNumber: "000123-cl7890M0002",
			expected: trackno.Decoded{
				BatchNumber: "000123",
				ClientCode:  "7890",
				Mode:        model.DeliveryModeMultimodal,
				OrderNumber: "0002",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := trackno.Decode(tt.trackNumber)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestDecodeFailsClosed(t *testing.T) {
	for _, trackNumber := range []string{
		"",
		"garbage",
		"000123",
		"000123-7890X0002", // unknown mode letter
		"000123-7890A02",   // order number too short
	} {
		_, err := trackno.Decode(trackNumber)
		assert.ErrorIs(t, err, model.ErrTrackNumberDecode, "track number %q", trackNumber)
	}
}

func TestReEncodeForModeChange(t *testing.T) {
	newTrack, err := trackno.ReEncodeForModeChange("000123-7890A0002", model.DeliveryModeSea)
	require.NoError(t, err)
	assert.Equal(t, "000123-7890S0002", newTrack)

	// A legacy format normalizes to the canonical one.
	newTrack, err = trackno.ReEncodeForModeChange("000123-7890a-0002", model.DeliveryModeRail)
	require.NoError(t, err)
	assert.Equal(t, "000123-7890R0002", newTrack)

	_, err = trackno.ReEncodeForModeChange("garbage", model.DeliveryModeSea)
	assert.ErrorIs(t, err, model.ErrTrackNumberDecode)
}

func TestItemTrackNumber(t *testing.T) {
	assert.Equal(t, "000123-7890S0002-1", trackno.ItemTrackNumber("000123-7890S0002", 1))
	assert.Equal(t, "000123-7890S0002-12", trackno.ItemTrackNumber("000123-7890S0002", 12))
}

func TestInvoiceNumberBase(t *testing.T) {
	assert.Equal(t, "INV-7890S0002", trackno.InvoiceNumberBase("000123-7890S0002"))
	assert.Equal(t, "INV-7890S0002", trackno.InvoiceNumberBase("000000-7890S0002"))
	assert.Equal(t, "INV-legacy", trackno.InvoiceNumberBase("legacy"))
}
