package rgconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/rendergraph/graph"
)

// AttachmentDescription is one [[attachments]] table entry in a
// declarative graph description file.
type AttachmentDescription struct {
	Name string `toml:"name"`
	// Format names one of graph's Format constants (e.g. "R8G8B8A8Unorm").
	// Ignored when Depth is true.
	Format string `toml:"format"`
	// Depth, if true, declares this attachment with AddDepthAttachment
	// instead of AddAttachment.
	Depth   bool `toml:"depth"`
	Samples int  `toml:"samples"`
}

// PassDescription is one [[passes]] table entry.
type PassDescription struct {
	Name         string   `toml:"name"`
	ColorOutputs []string `toml:"color_outputs"`
	DepthOutput  string   `toml:"depth_output"`
	Inputs       []string `toml:"inputs"`
	DepthInput   string   `toml:"depth_input"`
}

// GraphDescription is the declarative, data-driven equivalent of wiring a
// graph.Builder by hand in Go: the TOML-native descendant of the
// original source's render_config! macro (see SPEC_FULL.md).
type GraphDescription struct {
	Attachments []AttachmentDescription `toml:"attachments"`
	Passes      []PassDescription       `toml:"passes"`
}

// LoadGraphDescription decodes a GraphDescription from the TOML file at
// path.
func LoadGraphDescription(path string) (*GraphDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rgconfig: read %s: %w", path, err)
	}
	var desc GraphDescription
	if err := toml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("rgconfig: decode %s: %w", path, err)
	}
	return &desc, nil
}

var formatsByName = map[string]graph.Format{
	"R8G8Unorm":       graph.FormatR8G8Unorm,
	"R8G8B8A8Unorm":   graph.FormatR8G8B8A8Unorm,
	"R32Uint":         graph.FormatR32Uint,
	"D16Unorm":        graph.FormatD16Unorm,
	"D16Unorm_S8Uint": graph.FormatD16Unorm_S8Uint,
	"D24Unorm_S8Uint": graph.FormatD24Unorm_S8Uint,
	"D32Sfloat":       graph.FormatD32Sfloat,
	"D32Sfloat_S8Uint": graph.FormatD32Sfloat_S8Uint,
}

func parseFormat(name string) (graph.Format, error) {
	f, ok := formatsByName[name]
	if !ok {
		return graph.FormatUnknown, fmt.Errorf("rgconfig: unknown format %q", name)
	}
	return f, nil
}

// Compile wires a fresh graph.Builder according to the description. This
// is a loading-time concern distinct from graph.Build's own diagnostics:
// an unknown attachment name here is a malformed description file, not
// one of the three build-time diagnostics graph.Builder.Build returns.
func (d *GraphDescription) Compile() (*graph.Builder, error) {
	if dup := duplicateAttachmentNames(d.Attachments); len(dup) > 0 {
		return nil, fmt.Errorf("rgconfig: duplicate attachment name(s): %v", dup)
	}

	b := graph.NewBuilder()

	byName := map[string]*graph.Attachment{
		graph.BackbufferName: b.BackbufferAttachment(),
	}

	for _, a := range d.Attachments {
		if a.Name == graph.BackbufferName {
			return nil, fmt.Errorf("rgconfig: attachment %q is reserved", graph.BackbufferName)
		}
		var handle *graph.Attachment
		if a.Depth {
			handle = b.AddDepthAttachment(a.Name, a.Samples)
		} else {
			format, err := parseFormat(a.Format)
			if err != nil {
				return nil, fmt.Errorf("rgconfig: attachment %q: %w", a.Name, err)
			}
			handle = b.AddAttachment(a.Name, format, a.Samples)
		}
		byName[a.Name] = handle
	}

	lookup := func(passName, role, name string) (*graph.Attachment, error) {
		a, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("rgconfig: pass %q: unknown %s attachment %q", passName, role, name)
		}
		return a, nil
	}

	for _, pd := range d.Passes {
		pass := b.AddPass(pd.Name)

		for _, name := range pd.ColorOutputs {
			a, err := lookup(pd.Name, "color output", name)
			if err != nil {
				return nil, err
			}
			pass.AddColorOutput(a)
		}
		if pd.DepthOutput != "" {
			a, err := lookup(pd.Name, "depth output", pd.DepthOutput)
			if err != nil {
				return nil, err
			}
			pass.SetDepthOutput(a)
		}
		for _, name := range pd.Inputs {
			a, err := lookup(pd.Name, "input", name)
			if err != nil {
				return nil, err
			}
			pass.AddInputAttachment(a)
		}
		if pd.DepthInput != "" {
			a, err := lookup(pd.Name, "depth input", pd.DepthInput)
			if err != nil {
				return nil, err
			}
			pass.SetDepthInput(a)
		}
	}

	return b, nil
}

// duplicateAttachmentNames returns the names that appear more than once
// in attachments, sorted for a deterministic error message.
func duplicateAttachmentNames(attachments []AttachmentDescription) []string {
	counts := make(map[string]int, len(attachments))
	for _, a := range attachments {
		counts[a.Name]++
	}
	dup := make(map[string]bool)
	for name, count := range counts {
		if count > 1 {
			dup[name] = true
		}
	}
	names := maps.Keys(dup)
	slices.Sort(names)
	return names
}
