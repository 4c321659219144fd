// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package led

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"

	"ctlviz/logging"
	"ctlviz/property"

	"github.com/charmbracelet/log"
)

const WholeValue = -1

// Highest bit which can be selected, samples are 64 bit integers.
const MaxBit = 63

var (
	ErrInvalidSample = errors.New("invalid sample")
	ErrInvalidBit    = errors.New("invalid bit")
)

var (
	DarkGreen  = color.NRGBA{R: 20, G: 80, B: 10, A: 255}
	LightGreen = color.NRGBA{R: 0, G: 140, B: 0, A: 255}
	Yellow     = color.NRGBA{R: 210, G: 205, B: 0, A: 255}
	Red        = color.NRGBA{R: 207, G: 0, B: 0, A: 255}
)

func DefaultStateColors() []color.NRGBA {
	return []color.NRGBA{DarkGreen, LightGreen, Yellow, Red}
}

// Indicator derives a display state from live samples, either from the
// whole value or from a single selected bit.
type Indicator struct {
	mutex       sync.RWMutex
	sink        logging.Sink
	bit         int
	mask        uint64
	value       int64
	hasValue    bool
	state       int64
	stateColors []color.NRGBA
}

// New creates an indicator handling bit of each sample, or the whole value
// if bit is negative. An empty color list selects the default colors.
func New(sink logging.Sink, bit int, stateColors []color.NRGBA) *Indicator {
	if sink == nil {
		sink = logging.Default()
	}
	ind := &Indicator{sink: sink, bit: WholeValue}
	_ = ind.SetBit(bit)
	ind.SetStateColors(stateColors)
	return ind
}

// SetBit selects the bit to be handled. Negative values switch to whole
// value mode. Bits which cannot be part of a sample are rejected.
func (ind *Indicator) SetBit(bit int) error {
	if bit > MaxBit {
		err := fmt.Errorf("%w: %d exceeds %d", ErrInvalidBit, bit, MaxBit)
		ind.sink.Emit(logging.Record{
			Severity: log.ErrorLevel,
			Message:  "invalid bit was rejected",
			Property: "bit",
			Value:    property.Int(bit).String(),
			Err:      err,
		})
		return err
	}
	ind.mutex.Lock()
	defer ind.mutex.Unlock()
	if bit >= 0 {
		ind.bit = bit
		ind.mask = 1 << uint(bit)
	} else {
		ind.bit = WholeValue
		ind.mask = 0
	}
	return nil
}

func (ind *Indicator) Bit() int {
	ind.mutex.RLock()
	defer ind.mutex.RUnlock()
	return ind.bit
}

// Mask returns the bit mask, which is unset in whole value mode.
func (ind *Indicator) Mask() (uint64, bool) {
	ind.mutex.RLock()
	defer ind.mutex.RUnlock()
	return ind.mask, ind.bit >= 0
}

func (ind *Indicator) SetStateColors(c []color.NRGBA) {
	if len(c) == 0 {
		c = DefaultStateColors()
	}
	cc := make([]color.NRGBA, len(c))
	copy(cc, c)
	ind.mutex.Lock()
	ind.stateColors = cc
	ind.mutex.Unlock()
}

func (ind *Indicator) StateColors() []color.NRGBA {
	ind.mutex.RLock()
	defer ind.mutex.RUnlock()
	c := make([]color.NRGBA, len(ind.stateColors))
	copy(c, ind.stateColors)
	return c
}

// UpdateState handles a new sample. An absent sample keeps the current
// state. Samples which are not numeric are rejected and reported.
func (ind *Indicator) UpdateState(v property.Value) error {
	v = property.Normalize(v)
	if _, ok := v.(property.None); ok {
		return nil
	}
	n, err := property.Integer(v)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidSample, err)
		ind.sink.Emit(logging.Record{
			Severity: log.ErrorLevel,
			Message:  "invalid sample was rejected",
			Property: "value",
			Value:    v.String(),
			Err:      err,
		})
		return err
	}
	ind.mutex.Lock()
	defer ind.mutex.Unlock()
	ind.value = n
	ind.hasValue = true
	if ind.bit < 0 {
		ind.state = n
	} else {
		ind.state = int64((uint64(n) & ind.mask) >> uint(ind.bit))
	}
	return nil
}

// Value returns the last accepted sample, if any.
func (ind *Indicator) Value() (int64, bool) {
	ind.mutex.RLock()
	defer ind.mutex.RUnlock()
	return ind.value, ind.hasValue
}

func (ind *Indicator) State() int64 {
	ind.mutex.RLock()
	defer ind.mutex.RUnlock()
	return ind.state
}

// Color returns the color of the current state. States beyond the color
// list are shown in the nearest color.
func (ind *Indicator) Color() color.NRGBA {
	ind.mutex.RLock()
	defer ind.mutex.RUnlock()
	i := ind.state
	if i < 0 {
		i = 0
	}
	if i >= int64(len(ind.stateColors)) {
		i = int64(len(ind.stateColors)) - 1
	}
	return ind.stateColors[i]
}

// Run updates the indicator with every sample received until samples is
// closed or ctx is done. onChange is called for the first accepted sample
// and whenever the state changed afterwards, it may be nil.
func (ind *Indicator) Run(ctx context.Context, samples <-chan property.Value, onChange func(state int64)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v, ok := <-samples:
			if !ok {
				return nil
			}
			previous := ind.State()
			_, hadValue := ind.Value()
			if err := ind.UpdateState(v); err != nil {
				continue
			}
			if _, hasValue := ind.Value(); !hasValue {
				continue
			}
			if state := ind.State(); (state != previous || !hadValue) && onChange != nil {
				onChange(state)
			}
		}
	}
}
