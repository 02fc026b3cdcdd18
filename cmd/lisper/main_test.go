package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisper-lang/lisper/parser"
)

func TestEvalSource(t *testing.T) {
	buf := &bytes.Buffer{}

	err := evalSource(strings.NewReader(`(set x (add 1 2)) (print (mul x x))`), buf)
	require.NoError(t, err)
	assert.Equal(t, "9\n", buf.String())
}

func TestEvalSourceTopLevelMustBeList(t *testing.T) {
	err := evalSource(strings.NewReader(`x`), &bytes.Buffer{})
	assert.ErrorIs(t, err, parser.ErrUnexpectedToken)
}

func TestEvalSourceStopsAtFirstFailure(t *testing.T) {
	buf := &bytes.Buffer{}

	err := evalSource(strings.NewReader(`(print 1) (nope) (print 2)`), buf)
	assert.Error(t, err)
	assert.Equal(t, "1\n", buf.String())
}
