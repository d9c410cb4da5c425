package imageio

import (
	"os"
	"time"

	"github.com/bytedance/sonic"

	"mandelview/internal/geom"
	"mandelview/internal/mandel"
)

// Meta describes a rendered image. It is written next to the PNG.
type Meta struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	UpperLeft  [2]float64 `json:"upper_left"`
	LowerRight [2]float64 `json:"lower_right"`
	Limit      int        `json:"limit"`
	Workers    int        `json:"workers"`
	Inside     int        `json:"inside"`
	Elapsed    string     `json:"elapsed"`
	Mean       float64    `json:"mean"`
	Black      int        `json:"black"`
	White      int        `json:"white"`
	Version    string     `json:"version,omitempty"`
}

// NewMeta collects the render parameters and the buffer summary.
func NewMeta(d geom.Dims, b geom.Bounds, limit, workers int, inside byte, elapsed time.Duration, s mandel.Stats) Meta {
	return Meta{
		Width:      d.W,
		Height:     d.H,
		UpperLeft:  [2]float64{real(b.UpperLeft), imag(b.UpperLeft)},
		LowerRight: [2]float64{real(b.LowerRight), imag(b.LowerRight)},
		Limit:      limit,
		Workers:    workers,
		Inside:     int(inside),
		Elapsed:    elapsed.String(),
		Mean:       s.Mean,
		Black:      s.Black,
		White:      s.White,
	}
}

// Bounds returns the corners as complex numbers.
func (m Meta) Bounds() geom.Bounds {
	return geom.Bounds{
		UpperLeft:  complex(m.UpperLeft[0], m.UpperLeft[1]),
		LowerRight: complex(m.LowerRight[0], m.LowerRight[1]),
	}
}

func WriteMeta(path string, m Meta) error {
	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func ReadMeta(path string) (Meta, error) {
	var m Meta
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = sonic.Unmarshal(data, &m)
	return m, err
}
