// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package logging

import (
	"sync"

	"github.com/charmbracelet/log"
)

const DefaultRecorderSize = 256

// Recorder keeps the most recent records in memory.
type Recorder struct {
	mutex   sync.Mutex
	size    int
	records []Record
}

// NewRecorder creates a recorder holding at most size records. A value less
// than or equal to zero selects DefaultRecorderSize.
func NewRecorder(size int) *Recorder {
	if size <= 0 {
		size = DefaultRecorderSize
	}
	return &Recorder{size: size}
}

func (r *Recorder) Emit(rec Record) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records = append(r.records, rec)
	if len(r.records) > r.size {
		r.records = r.records[len(r.records)-r.size:]
	}
}

// Records returns a copy of the recorded entries, oldest first.
func (r *Recorder) Records() []Record {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	c := make([]Record, len(r.records))
	copy(c, r.records)
	return c
}

// Count returns the number of recorded entries with the given severity.
func (r *Recorder) Count(level log.Level) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var n int
	for i := range r.records {
		if r.records[i].Severity == level {
			n++
		}
	}
	return n
}

func (r *Recorder) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.records)
}

func (r *Recorder) Clear() {
	r.mutex.Lock()
	r.records = nil
	r.mutex.Unlock()
}
