// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervise

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards the log buffer against the handler goroutine writing
// while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestWatchHangup(t *testing.T) {
	var buf syncBuffer

	log := slog.New(slog.NewTextHandler(&buf, nil))

	stop := watchHangup(log)
	defer stop()

	require.NoError(t, raiseHangup())

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(),
			`msg="Received signal" signal=hangup`)
	}, 5*time.Second, 10*time.Millisecond)
}
