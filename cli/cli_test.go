// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ctlviz/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(config.NewTestConfig())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCurveDefaults(t *testing.T) {
	out, _, err := runCmd(t, "curve")
	require.NoError(t, err)
	assert.Contains(t, out, "color: white")
	assert.Contains(t, out, `lineStyle: "1"`)
	assert.Contains(t, out, `lineWidth: "1"`)
	assert.Contains(t, out, `symbolSize: "10"`)
	assert.NotContains(t, out, "name:")
}

func TestCurveAssignments(t *testing.T) {
	out, errOut, err := runCmd(t, "curve",
		"--name", "temp",
		"--set", "color=#FF0000",
		"--set", "lineWidth=4.3",
		"--set", "symbol=star")
	require.NoError(t, err)
	assert.Contains(t, out, "color: red")
	assert.Contains(t, out, `lineWidth: "4"`)
	assert.Contains(t, out, "symbol: star")
	assert.Contains(t, out, "name: temp")
	assert.Empty(t, errOut)
}

func TestCurveRejected(t *testing.T) {
	out, errOut, err := runCmd(t, "curve", "--set", "lineStyle=NoLine")
	require.NoError(t, err)
	assert.Contains(t, out, `lineStyle: "1"`)
	assert.Contains(t, errOut, "lineStyle")

	_, _, err = runCmd(t, "curve", "--strict", "--set", "lineStyle=NoLine")
	assert.Error(t, err)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := runCmd(t, "--log-format", "xml", "curve")
	assert.Error(t, err)
}

func TestLedMissingChannel(t *testing.T) {
	_, _, err := runCmd(t, "led")
	assert.Error(t, err)
}

// Sends a fixed sequence of samples for every subscription, then closes
// the connection.
func ledFeedHandler(w http.ResponseWriter, r *http.Request) {
	webSocketUpgrader := websocket.Upgrader{}
	conn, err := webSocketUpgrader.Upgrade(w, r, nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	_, p, err := conn.ReadMessage()
	if err != nil {
		return
	}
	var cmd struct {
		Action   string   `json:"action"`
		Channels []string `json:"channels"`
	}
	if err = json.Unmarshal(p, &cmd); err != nil || len(cmd.Channels) == 0 {
		return
	}
	ch := cmd.Channels[0]
	for _, v := range []string{"6", "2", "null", "2", "7"} {
		reply := `[{"channel":"` + ch + `","value":` + v + `}]`
		_ = conn.WriteMessage(websocket.TextMessage, []byte(reply))
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	// Wait for the client to acknowledge.
	_, _, _ = conn.ReadMessage()
}

func TestLed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(ledFeedHandler))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	_, errOut, err := runCmd(t, "led", "--channel", "SR:STATUS", "--bit", "2", "--url", url)

	require.NoError(t, err)
	assert.Contains(t, errOut, "following indicator")
	// 6 -> 1, 2 -> 0, absent, 2 unchanged, 7 -> 1
	assert.Equal(t, 3, strings.Count(errOut, "state changed"))
}
