package json

import (
	"fmt"
	"math"

	"github.com/fwojciec/cycloid"
)

// sampleDTO stores points column-wise, matching cycloid.Sample.
type sampleDTO struct {
	T           []float64      `json:"t"`
	X           []float64      `json:"x"`
	Y           []float64      `json:"y"`
	Singularity singularityDTO `json:"singularity"`
}

type singularityDTO struct {
	Detected            bool    `json:"detected"`
	Ratio               float64 `json:"ratio"`
	RatioInUnitInterval bool    `json:"ratio_in_unit_interval"`
}

func marshalSample(s cycloid.Sample) (sampleDTO, error) {
	if len(s.X) != len(s.T) || len(s.Y) != len(s.T) {
		return sampleDTO{}, fmt.Errorf("column lengths differ: t=%d x=%d y=%d", len(s.T), len(s.X), len(s.Y))
	}
	// encoding/json rejects NaN and Inf.
	for i := range s.T {
		if !finite(s.T[i]) || !finite(s.X[i]) || !finite(s.Y[i]) {
			return sampleDTO{}, fmt.Errorf("point %d is not finite", i)
		}
	}
	return sampleDTO{
		T: s.T,
		X: s.X,
		Y: s.Y,
		Singularity: singularityDTO{
			Detected:            s.Singularity.Detected,
			Ratio:               s.Singularity.Ratio,
			RatioInUnitInterval: s.Singularity.RatioInUnitInterval,
		},
	}, nil
}

func unmarshalSample(dto sampleDTO) (cycloid.Sample, error) {
	if len(dto.X) != len(dto.T) || len(dto.Y) != len(dto.T) {
		return cycloid.Sample{}, fmt.Errorf("column lengths differ: t=%d x=%d y=%d", len(dto.T), len(dto.X), len(dto.Y))
	}
	return cycloid.Sample{
		T: dto.T,
		X: dto.X,
		Y: dto.Y,
		Singularity: cycloid.Singularity{
			Detected:            dto.Singularity.Detected,
			Ratio:               dto.Singularity.Ratio,
			RatioInUnitInterval: dto.Singularity.RatioInUnitInterval,
		},
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
