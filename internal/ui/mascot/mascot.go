package mascot

import (
	"image"
	"image/color"
	"math/rand"
)

// Frame geometry in logical pixels, scaled up by pixelSize.
const (
	pixelSize   = 4
	frameWidth  = 28
	frameHeight = 15

	// WalkSpan is the number of positions the mascot covers before it
	// turns around.
	WalkSpan = 20
)

var (
	bodyColor = color.NRGBA{R: 0x31, G: 0x47, B: 0x3A, A: 0xFF}
	eyeColor  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Pixel grid for the dinosaur body, in (column, row) cells.
var bodyPixels = [][2]int{
	{1, 3}, {1, 4}, {1, 5},
	{2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6},
	{3, 1}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7},
	{4, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6},
	{5, 2}, {5, 3}, {5, 4}, {5, 5},
}

var eyePixel = [2]int{3, 2}

var (
	legsEven = [][2]int{{2, 7}, {4, 7}}
	legsOdd  = [][2]int{{3, 7}, {5, 7}}
)

// Frame renders one walking frame of the mascot on a transparent
// background. Position selects both the horizontal offset and the leg
// phase; rng scatters a few dust specks around the body.
func Frame(position int, rng *rand.Rand) *image.NRGBA {
	if position < 0 {
		position = 0
	}
	if position > WalkSpan {
		position = WalkSpan
	}

	img := image.NewNRGBA(image.Rect(0, 0, frameWidth*pixelSize, frameHeight*pixelSize))

	for _, cell := range bodyPixels {
		drawCell(img, position+cell[0], cell[1], bodyColor)
	}
	drawCell(img, position+eyePixel[0], eyePixel[1], eyeColor)

	legs := legsEven
	if position%8 >= 4 {
		legs = legsOdd
	}
	for _, cell := range legs {
		drawCell(img, position+cell[0], cell[1], bodyColor)
	}

	if rng != nil {
		for i := 0; i < 3; i++ {
			x := rng.Intn(frameWidth * pixelSize)
			y := rng.Intn(frameHeight * pixelSize / 2)
			size := 1 + rng.Intn(2)
			drawSquare(img, x, y, size, bodyColor)
		}
	}

	return img
}

func drawCell(img *image.NRGBA, cellX, cellY int, fill color.NRGBA) {
	drawSquare(img, cellX*pixelSize, cellY*pixelSize, pixelSize, fill)
}

func drawSquare(img *image.NRGBA, x, y, size int, fill color.NRGBA) {
	bounds := img.Bounds()
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			px, py := x+dx, y+dy
			if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
				continue
			}
			img.SetNRGBA(px, py, fill)
		}
	}
}
