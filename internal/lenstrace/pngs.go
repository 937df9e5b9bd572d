package lenstrace

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// SaveSpotPNG writes a res×res spot diagram of the rays' current (x, y) positions.
// The view is centred on the axis and scaled so the outermost ray sits at 90% of the half-width.
// Each ray is drawn as a square dot; overlapping dots saturate to white.
func SaveSpotPNG(rays []*Ray, path string, res int) error {
	if res <= 0 {
		res = SpotRes
	}
	img := image.NewGray16(image.Rect(0, 0, res, res))

	extent := SpotExtent(rays)
	if extent == 0 {
		extent = 1 // all rays on axis: any scale will do
	}
	half := Real(res-1) / 2
	scale := 0.9 * half / extent
	dot := imax(1, res/256)

	// Axis cross-hair.
	for i := 0; i < res; i++ {
		img.SetGray16(i, res/2, color.Gray16{Y: 0x3000})
		img.SetGray16(res/2, i, color.Gray16{Y: 0x3000})
	}

	for _, r := range rays {
		p := r.P()
		cx := int(half + p.X*scale + 0.5)
		cy := int(half - p.Y*scale + 0.5) // flip Y so up is up
		for dy := -dot; dy <= dot; dy++ {
			for dx := -dot; dx <= dot; dx++ {
				x, y := cx+dx, cy+dy
				if x < 0 || y < 0 || x >= res || y >= res {
					continue
				}
				v := img.Gray16At(x, y).Y
				nv := uint32(v) + 0x8000
				if nv > 0xffff {
					nv = 0xffff
				}
				img.SetGray16(x, y, color.Gray16{Y: uint16(nv)})
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	DebugLog("Saved spot diagram: %s (%d rays, extent %.6g)", path, len(rays), extent)
	return f.Close()
}
