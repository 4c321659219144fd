// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package wsfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"ctlviz/channel"
	"ctlviz/logging"
	"ctlviz/property"

	"github.com/charmbracelet/log"
	"github.com/ericlagergren/decimal"
	"github.com/gorilla/websocket"
)

var ErrNotConnected = errors.New("feed is not connected")

type command struct {
	Action   string   `json:"action"`
	Channels []string `json:"channels"`
}

// Message is a single sample sent by the server. Messages are sent as JSON
// arrays.
type Message struct {
	Channel string          `json:"channel"`
	Value   json.RawMessage `json:"value"`
}

// Client receives samples from a websocket server and publishes them to
// subscribers.
type Client struct {
	url       string
	timeout   time.Duration
	sink      logging.Sink
	samples   *channel.Map[property.Value]
	conn      *websocket.Conn
	connMutex sync.Mutex
}

func NewClient(url string, timeout time.Duration, bufferSize int, sink logging.Sink) *Client {
	if sink == nil {
		sink = logging.Default()
	}
	return &Client{
		url:     url,
		timeout: timeout,
		sink:    sink,
		samples: channel.NewMap[property.Value](bufferSize),
	}
}

func (cl *Client) Connect(ctx context.Context) error {
	cl.connMutex.Lock()
	defer cl.connMutex.Unlock()
	if cl.conn != nil {
		return errors.New("only a single connection is supported")
	}
	if cl.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cl.timeout)
		defer cancel()
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, cl.url, nil)
	if err != nil {
		return fmt.Errorf("could not connect to %s: %w", cl.url, err)
	}
	cl.conn = conn
	return nil
}

func (cl *Client) send(cmd command) error {
	cl.connMutex.Lock()
	defer cl.connMutex.Unlock()
	if cl.conn == nil {
		return ErrNotConnected
	}
	msg, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	return cl.conn.WriteMessage(websocket.TextMessage, msg)
}

// Subscribe requests samples of address. The returned channel is closed
// when the subscription ends or the connection is terminated.
func (cl *Client) Subscribe(address string) (<-chan property.Value, error) {
	c, err := cl.samples.Subscribe(address)
	if err != nil {
		return nil, err
	}
	if err = cl.send(command{Action: "subscribe", Channels: []string{address}}); err != nil {
		_ = cl.samples.Unsubscribe(address)
		return nil, err
	}
	return c, nil
}

func (cl *Client) Unsubscribe(address string) error {
	if err := cl.samples.Unsubscribe(address); err != nil {
		return err
	}
	return cl.send(command{Action: "unsubscribe", Channels: []string{address}})
}

// Run reads samples until the connection is closed. All subscriptions are
// closed afterwards.
func (cl *Client) Run() error {
	cl.connMutex.Lock()
	conn := cl.conn
	cl.connMutex.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	defer cl.samples.Clear()
	for {
		var data []Message
		err := conn.ReadJSON(&data)

		cl.samples.ClearPendingClose()

		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("connection was terminated: %w", err)
		}
		for i := range data {
			v, err := decodeValue(data[i].Value)
			if err != nil {
				cl.sink.Emit(logging.Record{
					Severity: log.ErrorLevel,
					Message:  "undecodable sample was dropped",
					Property: data[i].Channel,
					Value:    string(data[i].Value),
					Err:      err,
				})
				continue
			}
			if err = cl.samples.Publish(data[i].Channel, v); err != nil {
				cl.sink.Emit(logging.Record{
					Severity: log.WarnLevel,
					Message:  "sample buffer overflow",
					Property: data[i].Channel,
					Err:      err,
				})
			}
		}
	}
}

func (cl *Client) Close() error {
	cl.connMutex.Lock()
	defer cl.connMutex.Unlock()
	if cl.conn == nil {
		return nil
	}
	_ = cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	err := cl.conn.Close()
	cl.conn = nil
	return err
}

// decodeValue converts a JSON value to a property value. Numbers without
// fraction become integers, other numbers floats.
func decodeValue(raw json.RawMessage) (property.Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return property.None{}, nil
	}
	switch raw[0] {
	case 'n':
		return property.None{}, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return property.String(s), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		seq := make(property.Seq, len(items))
		for i := range items {
			v, err := decodeValue(items[i])
			if err != nil {
				return nil, err
			}
			seq[i] = v
		}
		return seq, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		if b {
			return property.Int(1), nil
		}
		return property.Int(0), nil
	case '{':
		return property.Unsupported{Raw: string(raw)}, nil
	default:
		d, ok := new(decimal.Big).SetString(string(raw))
		if !ok || !d.IsFinite() {
			return nil, fmt.Errorf("invalid number %s", raw)
		}
		if d.IsInt() {
			if n, ok := d.Int64(); ok {
				return property.Int(n), nil
			}
		}
		f, ok := d.Float64()
		if !ok {
			return nil, fmt.Errorf("number %s out of range", raw)
		}
		return property.Float(f), nil
	}
}
