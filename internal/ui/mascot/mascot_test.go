package mascot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDimensions(t *testing.T) {
	frame := Frame(0, nil)
	bounds := frame.Bounds()
	assert.Equal(t, frameWidth*pixelSize, bounds.Dx())
	assert.Equal(t, frameHeight*pixelSize, bounds.Dy())
}

func TestFrameClampsPosition(t *testing.T) {
	// Out-of-range positions clamp instead of drawing outside the frame.
	assert.Equal(t, Frame(0, nil), Frame(-5, nil))
	assert.Equal(t, Frame(WalkSpan, nil), Frame(WalkSpan+10, nil))
}

func TestFrameIsDeterministicWithoutRNG(t *testing.T) {
	assert.Equal(t, Frame(3, nil), Frame(3, nil))
}

func TestFrameBodyAndEye(t *testing.T) {
	frame := Frame(0, nil)

	// Body pixel at cell (2,3).
	assert.Equal(t, bodyColor, frame.NRGBAAt(2*pixelSize, 3*pixelSize))
	// The eye is white.
	assert.Equal(t, eyeColor, frame.NRGBAAt(eyePixel[0]*pixelSize, eyePixel[1]*pixelSize))
}

func TestFrameLegPhaseAlternates(t *testing.T) {
	// Positions 0 and 4 fall on opposite leg phases.
	legRow := 7 * pixelSize

	even := Frame(0, nil)
	assert.Equal(t, bodyColor, even.NRGBAAt(2*pixelSize, legRow))

	odd := Frame(4, nil)
	// Leg cells shift with position; cell (3,7) offset by position 4.
	assert.Equal(t, bodyColor, odd.NRGBAAt((4+3)*pixelSize, legRow))
	assert.NotEqual(t, bodyColor, odd.NRGBAAt((4+2)*pixelSize, legRow))
}

func TestAppIconIsValidPNG(t *testing.T) {
	resource := AppIcon()
	require.NotNil(t, resource)

	img, err := png.Decode(bytes.NewReader(resource.Content()))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	// Cached across calls.
	assert.Same(t, resource, AppIcon())
}
