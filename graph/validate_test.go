package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario3_PassNameCollision(t *testing.T) {
	b := NewBuilder()
	b.AddPass("foo")
	b.AddPass("foo")

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPassNameCollision))
}

func TestScenario4_NonDepthFormatInDepthInput(t *testing.T) {
	b := NewBuilder()
	notDepth := b.AddAttachment("color", FormatR8G8B8A8Unorm, 1)

	p := b.AddPass("p")
	p.SetDepthInput(notDepth)

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonDepthFormatInDepthSlot))
}

func TestValidate_NonDepthFormatInDepthOutput(t *testing.T) {
	b := NewBuilder()
	notDepth := b.AddAttachment("color", FormatR8G8B8A8Unorm, 1)

	p := b.AddPass("p")
	p.SetDepthOutput(notDepth)

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonDepthFormatInDepthSlot))
}

func TestValidate_DepthFormatsAllAccepted(t *testing.T) {
	depthFormatList := []Format{
		FormatD16Unorm,
		FormatD16Unorm_S8Uint,
		FormatD24Unorm_S8Uint,
		FormatD32Sfloat,
		FormatD32Sfloat_S8Uint,
	}
	for _, f := range depthFormatList {
		b := NewBuilder()
		d := b.AddAttachment("depth", f, 1)
		p := b.AddPass("p")
		p.SetDepthOutput(d)

		_, err := b.Build()
		assert.NoErrorf(t, err, "format %s should be a valid depth format", f)
	}
}
