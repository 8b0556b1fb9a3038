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

package sdlview

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/logger"
	"github.com/jetsetilly/gym2600/version"
)

// the number of bytes per pixel in the texture
const pixelDepth = 4

// SdlView implements the environment.Renderer interface.
type SdlView struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture
	size image.Point

	// scaling of each pixel
	scale int32

	// called when the window is closed
	onQuit func()
	closed bool
}

// NewSdlView is the preferred method of initialisation for the SdlView type.
// The window is hidden until the first frame is rendered.
func NewSdlView(scale int) (*SdlView, error) {
	if scale < 1 {
		scale = 1
	}

	v := &SdlView{
		scale: int32(scale),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlview: %v", err)
	}

	// we only care about quit events
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	v.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlview: %v", err)
	}

	v.renderer, err = sdl.CreateRenderer(v.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		v.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdlview: %v", err)
	}

	return v, nil
}

// SetQuitHandler sets the function that is called when the window is closed
// by the user.
func (v *SdlView) SetQuitHandler(f func()) {
	v.onQuit = f
}

// resize creates a new texture for the specified size and sets the window
// size accordingly
func (v *SdlView) resize(size image.Point) error {
	if v.texture != nil {
		if err := v.texture.Destroy(); err != nil {
			return err
		}
		v.texture = nil
	}

	var err error

	v.texture, err = v.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), int32(size.X), int32(size.Y))
	if err != nil {
		return err
	}

	v.size = size

	// pixels are twice as wide as they are tall
	v.window.SetSize(int32(size.X)*v.scale*2, int32(size.Y)*v.scale)
	v.window.Show()

	logger.Logf(logger.Allow, "sdlview", "window resized for %dx%d frame", size.X, size.Y)

	return nil
}

// Render implements the environment.Renderer interface.
func (v *SdlView) Render(img *image.RGBA) error {
	if v.closed {
		return nil
	}

	v.service()
	if v.closed {
		return nil
	}

	sz := img.Bounds().Size()
	if sz != v.size {
		if err := v.resize(sz); err != nil {
			return curated.Errorf("sdlview: %v", err)
		}
	}

	pixels, pitch, err := v.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlview: %v", err)
	}

	for y := 0; y < sz.Y; y++ {
		src := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(pixels[y*pitch:y*pitch+sz.X*pixelDepth], img.Pix[src:src+sz.X*pixelDepth])
	}

	v.texture.Unlock()

	err = v.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf("sdlview: %v", err)
	}

	err = v.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlview: %v", err)
	}

	err = v.renderer.Copy(v.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlview: %v", err)
	}

	v.renderer.Present()

	return nil
}

// service the SDL event queue
func (v *SdlView) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			v.quit()
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				v.quit()
			}
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				v.quit()
			}
		}
	}
}

func (v *SdlView) quit() {
	if v.closed {
		return
	}
	v.closed = true
	v.window.Hide()
	logger.Log(logger.Allow, "sdlview", "window closed")
	if v.onQuit != nil {
		v.onQuit()
	}
}

// EndRendering implements the environment.Renderer interface.
func (v *SdlView) EndRendering() error {
	var err error

	if v.texture != nil {
		err = v.texture.Destroy()
		v.texture = nil
	}

	if e := v.renderer.Destroy(); e != nil && err == nil {
		err = e
	}

	if e := v.window.Destroy(); e != nil && err == nil {
		err = e
	}

	sdl.Quit()

	if err != nil {
		return curated.Errorf("sdlview: %v", err)
	}

	return nil
}
