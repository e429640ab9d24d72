package ebitenhost

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	clickHz    = 880
	clickMs    = 40
)

// Clicker plays a short synthesized tick. It implements gavui.Audio.
type Clicker struct {
	player *audio.Player
}

// NewClicker creates the audio context and the click buffer. Ebitengine
// allows one audio context per process, so call it once.
func NewClicker() *Clicker {
	ctx := audio.NewContext(sampleRate)
	return &Clicker{player: ctx.NewPlayerFromBytes(clickPCM(sampleRate, clickHz, clickMs))}
}

// PlayClickSound restarts the tick from the beginning.
func (c *Clicker) PlayClickSound() {
	if c == nil || c.player == nil {
		return
	}
	_ = c.player.Rewind()
	c.player.Play()
}

// clickPCM renders a decaying sine as 16-bit little-endian stereo.
func clickPCM(rate, hz, ms int) []byte {
	n := rate * ms / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*float64(hz)*float64(i)/float64(rate)) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
