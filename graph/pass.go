package graph

// Pass is a named rendering step. Output and input lists are ordered and
// order-preserving within a pass; duplicate wiring (the same attachment
// added twice) is tolerated here and surfaced, if at all, only at build
// time (spec §4.1, §9 "same-attachment duplicate wiring").
type Pass struct {
	Name string

	ColorOutputs []*Attachment
	DepthOutput  *Attachment

	Inputs     []*Attachment
	DepthInput *Attachment
}

func newPass(name string) *Pass {
	return &Pass{Name: name}
}

// AddColorOutput wires attachment as an ordered colour output of p. It
// registers p as a writer of attachment and sets the colour-attachment
// usage bit. Calling this twice with the same attachment records it
// twice and registers p twice as its writer (idempotence is explicitly
// not enforced, spec §8 property 7).
func (p *Pass) AddColorOutput(attachment *Attachment) {
	p.ColorOutputs = append(p.ColorOutputs, attachment)
	attachment.addWriter(p)
}

// SetDepthOutput replaces any prior depth output wired on p. The
// previously-wired attachment, if any, keeps its writer registration —
// only p's own slot is replaced, mirroring the reference implementation's
// RefCell::replace semantics.
func (p *Pass) SetDepthOutput(attachment *Attachment) {
	p.DepthOutput = attachment
	attachment.addDepthWriter(p)
}

// AddInputAttachment wires attachment as an ordered sampled/input-attachment
// read of p.
func (p *Pass) AddInputAttachment(attachment *Attachment) {
	p.Inputs = append(p.Inputs, attachment)
	attachment.addReader(p)
}

// SetDepthInput replaces any prior depth input wired on p.
func (p *Pass) SetDepthInput(attachment *Attachment) {
	p.DepthInput = attachment
	attachment.addDepthReader(p)
}
