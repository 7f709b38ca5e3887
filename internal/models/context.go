package models

// PipelineContext accumulates stage output for a single document. Each section
// is nil until the stage that owns it has succeeded.
type PipelineContext struct {
	Filename string
	Content  []byte

	Extraction  *Extraction
	Explanation *Explanation
	Resources   *Resources
	Plan        *Plan
}

func NewPipelineContext(content []byte, filename string) *PipelineContext {
	return &PipelineContext{Filename: filename, Content: content}
}

// Delta is a stage payload that knows which section of the context it fills.
type Delta interface {
	MergeInto(pc *PipelineContext)
}

func (e *Extraction) MergeInto(pc *PipelineContext)  { pc.Extraction = e }
func (e *Explanation) MergeInto(pc *PipelineContext) { pc.Explanation = e }
func (r *Resources) MergeInto(pc *PipelineContext)   { pc.Resources = r }
func (p *Plan) MergeInto(pc *PipelineContext)        { pc.Plan = p }

// Merge applies d to the context. A nil delta is ignored.
func (pc *PipelineContext) Merge(d Delta) {
	if d == nil {
		return
	}
	d.MergeInto(pc)
}

func (pc *PipelineContext) RawText() string {
	if pc.Extraction == nil {
		return ""
	}
	return pc.Extraction.RawText
}

func (pc *PipelineContext) DocumentType() DocumentType {
	if pc.Extraction == nil || pc.Extraction.DocumentType == "" {
		return DocUnknown
	}
	return pc.Extraction.DocumentType
}

func (pc *PipelineContext) SimplifiedTerms() []SimplifiedTerm {
	if pc.Explanation == nil {
		return nil
	}
	return pc.Explanation.SimplifiedTerms
}

func (pc *PipelineContext) CostSavings() []CostSaving {
	if pc.Resources == nil {
		return nil
	}
	return pc.Resources.CostSavings
}

// TermsByCategory returns the simplified terms of category c, in order.
func (pc *PipelineContext) TermsByCategory(c Category) []SimplifiedTerm {
	var out []SimplifiedTerm
	for _, t := range pc.SimplifiedTerms() {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}
