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
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/soundload"
	"github.com/veandco/go-sdl2/sdl"
)

// the sample rate of the audio device. the rate is chosen so that each cycle
// of the virtual machine is a whole number of samples
const sampleFreq = 48000

const samplesPerCycle = sampleFreq / timers.TickRate

// the number of cycles worth of audio that are kept queued on the audio device.
// a longer queue introduces lag between the VM and the audio but a shorter
// queue will cause the device to run dry if the main thread is delayed
const queueCycles = 3

// the amplitude of the tone in unsigned 8bit audio
const amplitude = 48

// audio plays the tone using the SDL audio queue.
type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	tone *soundload.Tone

	// active is written by SetTone() in the emulation goroutine and read in
	// the main thread
	active atomic.Bool

	// whether audio was queued on the previous call to service()
	playing bool

	scratch []float32
	buffer  []uint8
}

// newTone creates the tone from the sample named in the preferences. if
// there is no sample or the sample cannot be loaded a square wave is used
func newTone(p *Preferences) (*soundload.Tone, error) {
	if fn := p.ToneSample.Get().(string); fn != "" {
		s, err := soundload.Load(fn)
		if err == nil {
			return soundload.NewSampleTone(s, sampleFreq)
		}
		logger.Log(logger.Allow, "sdlplay", err)
	}
	return soundload.NewSquareTone(p.ToneFreq.Get().(float64), sampleFreq)
}

// MUST ONLY be called from the #mainthread
func newAudio(p *Preferences) (*audio, error) {
	aud := &audio{
		scratch: make([]float32, samplesPerCycle),
		buffer:  make([]uint8, samplesPerCycle),
	}

	var err error

	aud.tone, err = newTone(p)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(samplesPerCycle),
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// setTone can be called from any goroutine.
func (aud *audio) setTone(active bool) {
	aud.active.Store(active)
}

// service keeps the audio queue filled while the tone is active. when the
// tone stops the queue is cleared immediately.
//
// MUST ONLY be called from the #mainthread
func (aud *audio) service() error {
	if !aud.active.Load() {
		if aud.playing {
			sdl.ClearQueuedAudio(aud.id)
			aud.tone.Reset()
			aud.playing = false
		}
		return nil
	}

	aud.playing = true

	for sdl.GetQueuedAudioSize(aud.id) < uint32(queueCycles*len(aud.buffer)) {
		aud.tone.Fill(aud.scratch)
		for i, v := range aud.scratch {
			aud.buffer[i] = uint8(int(aud.spec.Silence) + int(v*amplitude))
		}
		err := sdl.QueueAudio(aud.id, aud.buffer)
		if err != nil {
			return curated.Errorf("sdlplay: audio: %v", err)
		}
	}

	return nil
}

// MUST ONLY be called from the #mainthread
func (aud *audio) destroy() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
