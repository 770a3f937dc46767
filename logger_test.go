// SPDX-License-Identifier: MIT

package conformal_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conformal"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := conformal.Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	conformal.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { conformal.SetLogger(nil) })

	conformal.Logger().Info("hello", "n", 3)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "n=3")

	conformal.SetLogger(nil)
	assert.False(t, conformal.Logger().Enabled(context.Background(), slog.LevelError))
}
