// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"strings"
)

// Producer tags the pipeline stage that produced a field. Extraction defaults
// (e.g. whether Cartesian profiles are two-sided) are keyed by it.
type Producer int

const (
	// Generic is any field without a more specific origin.
	Generic Producer = iota
	// Pupil is a complex-pupil phase or amplitude map.
	Pupil
	// PSF is a point-spread function.
	PSF
	// MTF is a modulation-transfer function (frequency domain, non-negative half is meaningful).
	MTF
	// Interferogram is a measured surface/wavefront map.
	Interferogram
	// Convolved is the output of a convolution with a sensor-level blur kernel.
	Convolved

	producerCount // sentinel; keep last
)

var producerNames = [producerCount]string{
	Generic:       "generic",
	Pupil:         "pupil",
	PSF:           "psf",
	MTF:           "mtf",
	Interferogram: "interferogram",
	Convolved:     "convolved",
}

// String returns the lower-case producer name.
func (p Producer) String() string {
	if p < 0 || p >= producerCount {
		return fmt.Sprintf("Producer(%d)", int(p))
	}

	return producerNames[p]
}

// ParseProducer resolves a producer name (case-insensitive). The empty string
// maps to Generic.
func ParseProducer(name string) (Producer, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Generic, nil
	}
	for p := Generic; p < producerCount; p++ {
		if producerNames[p] == n {
			return p, nil
		}
	}

	return Generic, fmt.Errorf("ParseProducer(%q): %w", name, ErrUnknownProducer)
}

// Producers lists every known producer in declaration order.
func Producers() []Producer {
	out := make([]Producer, 0, producerCount)
	for p := Generic; p < producerCount; p++ {
		out = append(out, p)
	}

	return out
}
