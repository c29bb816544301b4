package synth

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEverySoundRenders(t *testing.T) {
	for kind := SoundSelect; kind <= SoundRestart; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			buf := Generate(kind)
			require.NotEmpty(t, buf)
			require.Zero(t, len(buf)%frameBytes)

			peak := 0.0
			for i := 0; i < len(buf); i += 4 {
				v := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
				require.False(t, math.IsNaN(v))
				require.LessOrEqual(t, math.Abs(v), 1.0)
				peak = math.Max(peak, math.Abs(v))
			}
			require.Greater(t, peak, 0.01, "audible")
		})
	}
}

func TestChannelsMatch(t *testing.T) {
	buf := Generate(SoundSelect)
	for i := 0; i < len(buf); i += frameBytes {
		require.Equal(t, buf[i:i+4], buf[i+4:i+8])
	}
}

func TestUnknownSound(t *testing.T) {
	require.Nil(t, Generate(Sound(99)))
	require.Equal(t, "unknown", Sound(99).String())
}

func TestReaderDrains(t *testing.T) {
	data := Generate(SoundRestart)
	got, err := io.ReadAll(NewReader(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-50, -1.5, -1, 0, 0.3, 1, 2, 1e6} {
		y := softSat(x)
		require.LessOrEqual(t, math.Abs(y), 1.0)
		if x != 0 {
			require.Equal(t, math.Signbit(x), math.Signbit(y))
		}
	}
}
