// Package synth renders the game's procedural sound effects into stereo
// float32 little-endian PCM. It has no audio device dependency.
package synth

import (
	"io"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // two float32 channels
)

// Sound identifies one effect.
type Sound int

const (
	SoundSelect Sound = iota
	SoundCorrect
	SoundWrong
	SoundPerfect
	SoundHigh
	SoundMid
	SoundLow
	SoundRestart
)

func (s Sound) String() string {
	switch s {
	case SoundSelect:
		return "select"
	case SoundCorrect:
		return "correct"
	case SoundWrong:
		return "wrong"
	case SoundPerfect:
		return "perfect"
	case SoundHigh:
		return "high"
	case SoundMid:
		return "mid"
	case SoundLow:
		return "low"
	case SoundRestart:
		return "restart"
	}
	return "unknown"
}

// Generate renders kind. Unknown kinds yield nil.
func Generate(kind Sound) []byte {
	switch kind {
	case SoundSelect:
		return genSelect()
	case SoundCorrect:
		return genCorrect()
	case SoundWrong:
		return genWrong()
	case SoundPerfect:
		return genFanfare([]float64{523.25, 659.25, 783.99, 1046.5, 1318.5}, 0.08)
	case SoundHigh:
		return genFanfare([]float64{440, 554.37, 659.25, 880}, 0.09)
	case SoundMid:
		return genChime()
	case SoundLow:
		return genRumble()
	case SoundRestart:
		return genWhoosh()
	}
	return nil
}

// Reader streams a rendered buffer once.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
