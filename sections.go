package wiki

// SectionGeneratorListener wraps headers in sections derived from their
// levels, for producers that emit headers only. A level N header closes
// the open sections of level N and deeper, then opens sections until N are
// open. Sections opened inside a container are closed before the container
// ends.
type SectionGeneratorListener struct {
	ChainingListener

	frames []int // open sections per container, innermost last
}

func NewSectionGeneratorListener() *SectionGeneratorListener {
	return &SectionGeneratorListener{}
}

// SectionDepth returns the number of sections open in the current
// container.
func (l *SectionGeneratorListener) SectionDepth() int {
	if n := len(l.frames); n > 0 {
		return l.frames[n-1]
	}
	return 0
}

func (l *SectionGeneratorListener) push() {
	l.frames = append(l.frames, 0)
}

// pop closes the sections of the innermost container and drops it.
func (l *SectionGeneratorListener) pop() {
	l.closeTo(0)
	l.frames = pop(l.frames)
}

func (l *SectionGeneratorListener) frame() *int {
	if len(l.frames) == 0 {
		l.push()
	}
	return &l.frames[len(l.frames)-1]
}

func (l *SectionGeneratorListener) closeTo(depth int) {
	if len(l.frames) == 0 {
		return
	}
	for f := l.frame(); *f > depth; *f-- {
		l.ChainingListener.EndSection(nil)
	}
}

func (l *SectionGeneratorListener) openTo(depth int) {
	for f := l.frame(); *f < depth; *f++ {
		l.ChainingListener.BeginSection(nil)
	}
}

func (l *SectionGeneratorListener) BeginHeader(level HeaderLevel, id string, params Params) {
	if level.Valid() {
		l.closeTo(level.Depth())
		l.openTo(int(level))
	}
	l.ChainingListener.BeginHeader(level, id, params)
}

func (l *SectionGeneratorListener) BeginDocument(meta MetaData) {
	l.push()
	l.ChainingListener.BeginDocument(meta)
}

func (l *SectionGeneratorListener) EndDocument(meta MetaData) {
	l.pop()
	l.ChainingListener.EndDocument(meta)
}

func (l *SectionGeneratorListener) BeginGroup(params Params) {
	l.push()
	l.ChainingListener.BeginGroup(params)
}

func (l *SectionGeneratorListener) EndGroup(params Params) {
	l.pop()
	l.ChainingListener.EndGroup(params)
}

func (l *SectionGeneratorListener) BeginListItem(params Params) {
	l.push()
	l.ForwardBeginListItem(params)
}

func (l *SectionGeneratorListener) EndListItem(params Params) {
	l.pop()
	l.ForwardEndListItem(params)
}

func (l *SectionGeneratorListener) BeginDefinitionDescription() {
	l.push()
	l.ChainingListener.BeginDefinitionDescription()
}

func (l *SectionGeneratorListener) EndDefinitionDescription() {
	l.pop()
	l.ChainingListener.EndDefinitionDescription()
}

func (l *SectionGeneratorListener) BeginQuotation(params Params) {
	l.push()
	l.ChainingListener.BeginQuotation(params)
}

func (l *SectionGeneratorListener) EndQuotation(params Params) {
	l.pop()
	l.ChainingListener.EndQuotation(params)
}

func (l *SectionGeneratorListener) BeginTableCell(params Params) {
	l.push()
	l.ChainingListener.BeginTableCell(params)
}

func (l *SectionGeneratorListener) EndTableCell(params Params) {
	l.pop()
	l.ChainingListener.EndTableCell(params)
}

func (l *SectionGeneratorListener) BeginTableHeadCell(params Params) {
	l.push()
	l.ChainingListener.BeginTableHeadCell(params)
}

func (l *SectionGeneratorListener) EndTableHeadCell(params Params) {
	l.pop()
	l.ChainingListener.EndTableHeadCell(params)
}

func (l *SectionGeneratorListener) BeginFigure(params Params) {
	l.push()
	l.ChainingListener.BeginFigure(params)
}

func (l *SectionGeneratorListener) EndFigure(params Params) {
	l.pop()
	l.ChainingListener.EndFigure(params)
}
