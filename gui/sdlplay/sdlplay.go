// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gopher8"

const pixelDepth = 4

// the colours of lit and unlit pixels
var (
	litColor   = [3]byte{0xe8, 0xe8, 0xd0}
	unlitColor = [3]byte{0x20, 0x20, 0x28}
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	queue *userinput.Queue

	Prefs *Preferences

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	aud      *audio

	// pixels are written by Present() and copied to the texture by Service()
	crit   sync.Mutex
	pixels []byte
	dirty  bool

	// functions that must be run in the main thread
	service    chan func()
	serviceErr chan error

	// the following fields are only accessed in the main thread
	title string
	state govern.State
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Events
// from the window are sent to the queue.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(queue *userinput.Queue) (*SdlPlay, error) {
	scr := &SdlPlay{
		queue:      queue,
		pixels:     make([]byte, framebuffer.Width*framebuffer.Height*pixelDepth),
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		title:      windowTitle,
		state:      govern.Running,
	}

	var err error

	scr.Prefs, err = newPreferences()
	if err != nil {
		return nil, err
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window size is set in setScale() function
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		framebuffer.Width, framebuffer.Height,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.destroyWindow()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the texture is the same size as the framebuffer. it is scaled to fill
	// the window when it is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		framebuffer.Width, framebuffer.Height)
	if err != nil {
		scr.destroyWindow()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.aud, err = newAudio(scr.Prefs)
	if err != nil {
		scr.destroyWindow()
		return nil, err
	}

	err = scr.setScale(scr.Prefs.Scale.Get().(int))
	if err != nil {
		scr.aud.destroy()
		scr.destroyWindow()
		return nil, err
	}

	// start with a blank screen
	scr.fill(nil)
	scr.dirty = true

	// note that we've elected not to show the window on startup. window is
	// instead opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.aud.destroy()
	if err := scr.texture.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	scr.destroyWindow()
}

func (scr *SdlPlay) destroyWindow() {
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	_ = scr.window.Destroy()
	sdl.Quit()
}

// Present implements the hardware.Display interface. The framebuffer is
// converted to pixels for the texture. The texture is updated the next time
// Service() is called.
func (scr *SdlPlay) Present(fb *framebuffer.Framebuffer) error {
	pixels := fb.Pixels()

	scr.crit.Lock()
	defer scr.crit.Unlock()

	scr.fill(&pixels)
	scr.dirty = true

	return nil
}

// fill pixels array from the framebuffer pixels. a nil framebuffer fills the
// array with unlit pixels. must be called with the critical section locked
func (scr *SdlPlay) fill(pixels *[framebuffer.Width * framebuffer.Height]bool) {
	for i := 0; i < framebuffer.Width*framebuffer.Height; i++ {
		col := unlitColor
		if pixels != nil && pixels[i] {
			col = litColor
		}
		p := i * pixelDepth
		scr.pixels[p] = col[0]
		scr.pixels[p+1] = col[1]
		scr.pixels[p+2] = col[2]
		scr.pixels[p+3] = 255
	}
}

// SetTone implements the hardware.AudioMixer interface.
func (scr *SdlPlay) SetTone(active bool) error {
	scr.aud.setTone(active)
	return nil
}

// EndMixing implements the hardware.AudioMixer interface. The tone is
// silenced. The audio device is closed when the GUI is destroyed.
func (scr *SdlPlay) EndMixing() error {
	scr.aud.setTone(false)
	return nil
}

// use scale of -1 to reapply existing scale value.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) setScale(scale int) error {
	if scale < 0 {
		scale = scr.Prefs.Scale.Get().(int)
	} else if err := scr.Prefs.Scale.Set(scale); err != nil {
		return err
	}
	scr.window.SetSize(int32(framebuffer.Width*scale), int32(framebuffer.Height*scale))
	return nil
}

// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) updateTitle() {
	title := scr.title
	if scr.state == govern.Paused {
		title = fmt.Sprintf("%s (paused)", title)
	}
	scr.window.SetTitle(title)
}

// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) render() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.dirty {
		return nil
	}
	scr.dirty = false

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	rowLen := framebuffer.Width * pixelDepth
	for y := 0; y < framebuffer.Height; y++ {
		copy(pixels[y*pitch:y*pitch+rowLen], scr.pixels[y*rowLen:(y+1)*rowLen])
	}
	scr.texture.Unlock()

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

func (scr *SdlPlay) logError(err error) {
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
}
