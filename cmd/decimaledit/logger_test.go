package main

import (
	"bytes"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestCharmLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newCharmLogger(&buf, clog.WarnLevel)

	l.Debugf("selection %d..%d", 0, 2)
	l.Infof("attached %s", "price")
	assert.Empty(t, buf.String())

	l.Warnf("rejecting %q", "12a")
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "decimaledit:")
	assert.Contains(t, out, `rejecting "12a"`)

	buf.Reset()
	l.Errorf("replay failed: %v", "boom")
	assert.Contains(t, buf.String(), "ERRO")
	assert.Contains(t, buf.String(), "replay failed: boom")
}
