package neuromod

import (
	"math"

	"github.com/hypergraphdb/core/pkg/hgerr"
)

// MinNetActivation and MaxNetActivation bound NetActivation() for validated
// weights (each channel in [0, 1]).
const (
	MinNetActivation = -1.0
	MaxNetActivation = 1.5
)

// Weights holds the three-channel neuromodulatory signal on an edge. Fields
// are plain data; construction never clamps them.
type Weights struct {
	Excitatory float32
	Inhibitory float32
	Modulatory float32
}

// NetActivation computes excitatory - inhibitory + 0.5*modulatory. On
// validated weights the result lies in [MinNetActivation, MaxNetActivation].
func (w Weights) NetActivation() float64 {
	return float64(w.Excitatory) - float64(w.Inhibitory) + 0.5*float64(w.Modulatory)
}

// Normalized returns NetActivation rescaled to [0, 1].
func (w Weights) Normalized() float64 {
	return (w.NetActivation() + 1) / 2.5
}

// Validate fails with an InvalidNtWeightsError identifying the first
// out-of-range or non-finite channel, in excitatory/inhibitory/modulatory
// order. No auto-clamping is ever applied.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float32
	}{
		{"excitatory", w.Excitatory},
		{"inhibitory", w.Inhibitory},
		{"modulatory", w.Modulatory},
	}
	for _, f := range fields {
		v := float64(f.value)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			return &hgerr.InvalidNtWeightsError{Field: f.name, Value: f.value}
		}
	}
	return nil
}

// domainProfiles holds the fixed per-domain weight profile, keyed the same
// way the teacher's decay package keys its tier-lambda table.
var domainProfiles = map[Domain]Weights{
	DomainCode:     {Excitatory: 0.7, Inhibitory: 0.3, Modulatory: 0.2},
	DomainLegal:    {Excitatory: 0.6, Inhibitory: 0.4, Modulatory: 0.1},
	DomainMedical:  {Excitatory: 0.6, Inhibitory: 0.5, Modulatory: 0.1},
	DomainCreative: {Excitatory: 0.8, Inhibitory: 0.2, Modulatory: 0.5},
	DomainResearch: {Excitatory: 0.7, Inhibitory: 0.35, Modulatory: 0.3},
	DomainGeneral:  {Excitatory: 0.5, Inhibitory: 0.5, Modulatory: 0.0},
}

// ForDomain returns the fixed weight profile for d, falling back to
// DomainGeneral for an unrecognized value.
func ForDomain(d Domain) Weights {
	if w, ok := domainProfiles[d]; ok {
		return w
	}
	return domainProfiles[DomainGeneral]
}
