package graph

// BackbufferName is the reserved attachment name for the frame's final
// colour surface. User code must not pass it to Builder.AddAttachment.
const BackbufferName = "BACKBUFFER"

// Attachment is a named GPU image description. Readers and Writers are
// ordered, declaration-preserving back-reference lists maintained
// symmetrically by Pass wiring methods; tests should not assert on their
// order beyond that (spec §9).
type Attachment struct {
	Name    string
	Format  Format
	Samples int
	Usage   UsageFlags

	Readers []*Pass
	Writers []*Pass
}

func newAttachment(name string, format Format, samples int) *Attachment {
	if samples <= 0 {
		samples = 1
	}
	return &Attachment{
		Name:    name,
		Format:  format,
		Samples: samples,
	}
}

func (a *Attachment) addReader(p *Pass) {
	a.Readers = append(a.Readers, p)
	a.Usage |= UsageInputAttachment
}

func (a *Attachment) addDepthReader(p *Pass) {
	a.Readers = append(a.Readers, p)
	a.Usage |= UsageDepthStencilAttachment
}

func (a *Attachment) addWriter(p *Pass) {
	a.Writers = append(a.Writers, p)
	a.Usage |= UsageColorAttachment
}

func (a *Attachment) addDepthWriter(p *Pass) {
	a.Writers = append(a.Writers, p)
	a.Usage |= UsageDepthStencilAttachment
}
