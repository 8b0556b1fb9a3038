// This file is part of Gym2600.
//
// Gym2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gym2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gym2600.  If not, see <https://www.gnu.org/licenses/>.

package vcs

import (
	"image"
	"image/color"

	"github.com/jetsetilly/gopher2600/hardware/television/frameinfo"
	"github.com/jetsetilly/gopher2600/hardware/television/signal"
	"github.com/jetsetilly/gopher2600/hardware/television/specification"
)

// observer implements the television.PixelRenderer interface. the image of
// the most recently completed frame is available in the frame field
type observer struct {
	frameInfo frameinfo.Current

	// the image being drawn by the television
	img *image.RGBA

	// the cropped copy of the last completed frame
	frame *image.RGBA
}

func newObserver() *observer {
	obs := &observer{
		img: image.NewRGBA(image.Rect(0, 0, specification.ClksScanline, specification.AbsoluteMaxScanlines)),
	}
	obs.Resize(frameinfo.NewCurrent(specification.SpecNTSC))
	obs.Reset()
	return obs
}

// Resize implements the television.PixelRenderer interface.
func (obs *observer) Resize(frameInfo frameinfo.Current) error {
	obs.frameInfo = frameInfo
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (obs *observer) NewFrame(frameInfo frameinfo.Current) error {
	obs.snapshot()
	obs.frameInfo = frameInfo
	return nil
}

// snapshot copies the visible area of the current image into the frame
// field. the frame image is reallocated only if the crop size changes
func (obs *observer) snapshot() {
	crop := obs.frameInfo.Crop().Intersect(obs.img.Bounds())
	if crop.Empty() {
		return
	}

	sz := crop.Size()
	if obs.frame == nil || obs.frame.Bounds().Size() != sz {
		obs.frame = image.NewRGBA(image.Rectangle{Max: sz})
	}

	for y := 0; y < sz.Y; y++ {
		src := obs.img.PixOffset(crop.Min.X, crop.Min.Y+y)
		dst := obs.frame.PixOffset(0, y)
		copy(obs.frame.Pix[dst:dst+sz.X*4], obs.img.Pix[src:src+sz.X*4])
	}
}

// NewScanline implements the television.PixelRenderer interface.
func (obs *observer) NewScanline(scanline int) error {
	return nil
}

// SetPixels implements the television.PixelRenderer interface. Entries in sig
// after the last index have not been written in the current frame and are
// drawn as black.
func (obs *observer) SetPixels(sig []signal.SignalAttributes, last int) error {
	var col color.RGBA
	var offset int

	for i := range sig {
		if offset+4 > len(obs.img.Pix) {
			break // for loop
		}

		// VBLANK, NoSignal and stale entries are all drawn as black
		if i > last || sig[i].VBlank || sig[i].Index == signal.NoSignal {
			col = obs.frameInfo.Spec.GetColor(signal.ZeroBlack)
		} else {
			col = obs.frameInfo.Spec.GetColor(sig[i].Color)
		}

		s := obs.img.Pix[offset : offset+3 : offset+3]
		s[0] = col.R
		s[1] = col.G
		s[2] = col.B

		offset += 4
	}

	return nil
}

// Reset implements the television.PixelRenderer interface.
func (obs *observer) Reset() {
	// the alpha channel is set here and never changes
	for i := 0; i < len(obs.img.Pix); i += 4 {
		obs.img.Pix[i] = 0
		obs.img.Pix[i+1] = 0
		obs.img.Pix[i+2] = 0
		obs.img.Pix[i+3] = 255
	}
}

// EndRendering implements the television.PixelRenderer interface.
func (obs *observer) EndRendering() error {
	return nil
}
