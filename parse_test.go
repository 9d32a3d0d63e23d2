package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadings(t *testing.T) {
	in := []byte("# 2026-10-18, Sunday\n\n### memo\n09:15 hello world\n\n## Inbox\n\n- [ ] laundry\n")
	got := headings(in)
	assert.Equal(t, []heading{
		{Level: 1, Text: "2026-10-18, Sunday"},
		{Level: 3, Text: "memo"},
		{Level: 2, Text: "Inbox"},
	}, got)
	assert.Equal(t, "### memo", got[1].String())
}

func TestHeadingsNone(t *testing.T) {
	assert.Empty(t, headings([]byte("just some text\n")))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	render(newRenderer(false), &buf, parse([]byte("### memo\n09:15 hello world\n")))
	assert.Contains(t, buf.String(), "memo")
	assert.Contains(t, buf.String(), "09:15 hello world")
}
