package viz

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/orrery/internal/palette"
)

var errNoFrames = errors.New("viz: no frames recorded")

// captureFrame rasterises the canvas at 8x16 pixels per cell, each dot in its
// cell's colour.
func captureFrame(c *Canvas) *image.Paletted {
	charW, charH := 8, 16
	dotW, dotH := charW/2, charH/4

	pal := color.Palette{color.Black, color.White}
	index := map[string]uint8{"": 1}
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), nil)

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			hex := c.Colors[row][col]
			idx, ok := index[hex]
			if !ok && len(pal) < 256 {
				pal = append(pal, palette.HexRGBA(hex))
				idx = uint8(len(pal) - 1)
				index[hex] = idx
			}

			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !c.IsSet(col*2+dx, row*4+dy) {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
						}
					}
				}
			}
		}
	}

	img.Palette = pal
	return img
}

// saveGIF writes frames at delay hundredths of a second each.
func saveGIF(path string, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
