// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package channel

import (
	"fmt"
	"sync"

	"github.com/zhangyunhao116/skipmap"
)

const DefaultBufferSize = 1024

// Map delivers values to subscribers, keyed by channel address. Each
// address has at most one subscriber.
type Map[T any] struct {
	sm                    *skipmap.StringMap[chan T]
	smMutex               sync.RWMutex
	bufferSize            int
	pendingCloseList      []chan T
	pendingCloseListMutex sync.Mutex
}

// NewMap creates a map whose subscriptions buffer up to bufferSize values.
// A value less than or equal to zero selects DefaultBufferSize.
func NewMap[T any](bufferSize int) *Map[T] {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Map[T]{
		sm:         skipmap.NewString[chan T](),
		bufferSize: bufferSize,
	}
}

func (m *Map[T]) addPendingClose(c chan T) {
	m.pendingCloseListMutex.Lock()
	m.pendingCloseList = append(m.pendingCloseList, c)
	m.pendingCloseListMutex.Unlock()
}

// ClearPendingClose closes the channels of all previous subscriptions.
// Call from the goroutine which publishes data.
func (m *Map[T]) ClearPendingClose() {
	m.pendingCloseListMutex.Lock()
	for _, c := range m.pendingCloseList {
		close(c)
	}
	m.pendingCloseList = nil
	m.pendingCloseListMutex.Unlock()
}

// Clear closes all subscriptions. Call from the goroutine which publishes
// data.
func (m *Map[T]) Clear() {
	m.smMutex.Lock()
	defer m.smMutex.Unlock()
	m.sm.Range(
		func(k string, c chan T) bool {
			close(c)
			return true
		},
	)
	m.sm = skipmap.NewString[chan T]()
}

func (m *Map[T]) current() *skipmap.StringMap[chan T] {
	m.smMutex.RLock()
	defer m.smMutex.RUnlock()
	return m.sm
}

func (m *Map[T]) Subscribe(address string) (<-chan T, error) {
	// Buffered, so that old data can be dropped if processing is too slow.
	c := make(chan T, m.bufferSize)
	if _, exists := m.current().LoadOrStore(address, c); exists {
		return nil, fmt.Errorf("already subscribed to %s", address)
	}
	return c, nil
}

func (m *Map[T]) Unsubscribe(address string) error {
	c, exists := m.current().LoadAndDelete(address)
	if !exists {
		return fmt.Errorf("cannot unsubscribe %s: not subscribed", address)
	}
	// Closing here could race with Publish.
	m.addPendingClose(c)
	return nil
}

func (m *Map[T]) IsSubscribed(address string) bool {
	_, exists := m.current().Load(address)
	return exists
}

// Addresses returns all subscribed addresses in ascending order.
func (m *Map[T]) Addresses() []string {
	var a []string
	m.current().Range(func(k string, c chan T) bool {
		a = append(a, k)
		return true
	})
	return a
}

// Publish delivers data to the subscriber of address. If the buffer is full,
// the oldest value is dropped, new values are more important than old ones.
// Publishing to an address without subscriber is silently ignored.
func (m *Map[T]) Publish(address string, data T) error {
	c, exists := m.current().Load(address)
	if !exists {
		return nil
	}
	var err error
	select {
	case c <- data:
	default:
		select {
		// try to remove first entry, non-blocking
		case <-c:
			select {
			case c <- data:
				err = fmt.Errorf("channel %s: buffer overflow, old data is being removed", address)
			default:
				err = fmt.Errorf("channel %s: buffer overflow, new data is being dropped", address)
			}
		default:
			err = fmt.Errorf("channel %s: buffer cannot be read from or written to", address)
		}
	}
	return err
}
