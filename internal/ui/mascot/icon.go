package mascot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

var (
	iconOnce     sync.Once
	iconResource fyne.Resource
)

// AppIcon returns the clock face application icon, rendered once and
// cached.
func AppIcon() fyne.Resource {
	iconOnce.Do(func() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, renderClockFace(64)); err != nil {
			panic(err)
		}
		iconResource = fyne.NewStaticResource("clock.png", buf.Bytes())
	})
	return iconResource
}

func renderClockFace(size int) *image.NRGBA {
	face := color.NRGBA{R: 0xED, G: 0xF4, B: 0xF2, A: 0xFF}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	center := size / 2
	radius := size/2 - 5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-center, y-center
			distSq := dx*dx + dy*dy
			switch {
			case distSq <= radius*radius:
				img.SetNRGBA(x, y, face)
			case distSq <= (radius+2)*(radius+2):
				img.SetNRGBA(x, y, bodyColor)
			}
		}
	}

	// Hour hand straight up, minute hand down-right.
	hourLength := size / 4
	for i := 0; i < hourLength; i++ {
		drawSquare(img, center-1, center-i, 3, bodyColor)
	}
	minuteLength := size / 5
	for i := 0; i < minuteLength; i++ {
		drawSquare(img, center+i, center+i, 2, bodyColor)
	}
	drawSquare(img, center-3, center-3, 6, bodyColor)

	return img
}
