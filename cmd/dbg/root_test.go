/*
 * Copyright (c) 2016 Dan Kortschak <dan.kortschak@adelaide.edu.au>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kortschak/dbg"
)

func testSession(buf *bytes.Buffer) *dbg.Session {
	clock := func() time.Time { return time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC) }
	return dbg.New(buf, dbg.WithClock(clock))
}

func TestInspectDocumentMapping(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("x: 5\ny: hi\n"), &doc))

	var buf bytes.Buffer
	require.NoError(t, inspectDocument(testSession(&buf), "test.yaml", &doc))

	want := "[test.yaml:1 (document) 24.08.26 10:30:00]\n" +
		"x: int = 5\n" +
		"y: string = \"hi\"\n"
	assert.Equal(t, want, buf.String())
}

func TestInspectDocumentNested(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("seq:\n  - 1\n  - 2\n"), &doc))

	var buf bytes.Buffer
	require.NoError(t, inspectDocument(testSession(&buf), "test.yaml", &doc))

	assert.Contains(t, buf.String(), "seq: []interface {} = {1, 2}\n")
}

func TestInspectDocumentScalarDocument(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("42\n"), &doc))

	var buf bytes.Buffer
	require.NoError(t, inspectDocument(testSession(&buf), "test.yaml", &doc))

	assert.Contains(t, buf.String(), "document: int = 42\n")
}
