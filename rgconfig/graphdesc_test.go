package rgconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rendergraph/graph"
)

func TestLoadGraphDescription_ExampleFixture(t *testing.T) {
	desc, err := LoadGraphDescription("../testdata/example_graph.toml")
	require.NoError(t, err)
	require.Len(t, desc.Attachments, 6)
	require.Len(t, desc.Passes, 5)
}

func TestGraphDescription_CompileAndBuild(t *testing.T) {
	desc, err := LoadGraphDescription("../testdata/example_graph.toml")
	require.NoError(t, err)

	builder, err := desc.Compile()
	require.NoError(t, err)

	r, err := builder.Build()
	require.NoError(t, err)
	require.Equal(t, 5, len(r.Order))
	assert.Equal(t, "gbuffer", r.Order[0])
	assert.Equal(t, "composite", r.Order[len(r.Order)-1])
}

func TestGraphDescription_DuplicateAttachmentName(t *testing.T) {
	desc := &GraphDescription{
		Attachments: []AttachmentDescription{
			{Name: "a", Format: "R8G8B8A8Unorm", Samples: 1},
			{Name: "a", Format: "R8G8B8A8Unorm", Samples: 1},
		},
	}
	_, err := desc.Compile()
	assert.Error(t, err)
}

func TestGraphDescription_ReservedBackbufferName(t *testing.T) {
	desc := &GraphDescription{
		Attachments: []AttachmentDescription{
			{Name: graph.BackbufferName, Format: "R8G8B8A8Unorm", Samples: 1},
		},
	}
	_, err := desc.Compile()
	assert.Error(t, err)
}

func TestGraphDescription_UnknownAttachmentReference(t *testing.T) {
	desc := &GraphDescription{
		Passes: []PassDescription{
			{Name: "p", ColorOutputs: []string{"nonexistent"}},
		},
	}
	_, err := desc.Compile()
	assert.Error(t, err)
}

func TestGraphDescription_UnknownFormat(t *testing.T) {
	desc := &GraphDescription{
		Attachments: []AttachmentDescription{
			{Name: "a", Format: "NotAFormat", Samples: 1},
		},
	}
	_, err := desc.Compile()
	assert.Error(t, err)
}
