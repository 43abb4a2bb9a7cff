package wiki

// GroupStateListener counts the open groups. It is not stackable: the
// count stays visible while the stackable listeners are reset for a group.
type GroupStateListener struct {
	ChainingListener

	depth int
}

func NewGroupStateListener() *GroupStateListener {
	return &GroupStateListener{}
}

func (l *GroupStateListener) GroupDepth() int { return l.depth }
func (l *GroupStateListener) IsInGroup() bool { return l.depth > 0 }

func (l *GroupStateListener) BeginGroup(params Params) {
	l.depth++
	l.ChainingListener.BeginGroup(params)
}

func (l *GroupStateListener) EndGroup(params Params) {
	l.ChainingListener.EndGroup(params)
	dec(&l.depth)
}

// Stacker is the part of a chain that resets stackable listeners.
type Stacker interface {
	PushAllStackableListeners()
	PopAllStackableListeners()
}

var _ Stacker = (*ListenerChain)(nil)

// GroupStackingListener gives every stackable listener of its chain a fresh
// instance for the duration of each group. Register it ahead of the
// listeners it resets.
type GroupStackingListener struct {
	ChainingListener
}

func NewGroupStackingListener() *GroupStackingListener {
	return &GroupStackingListener{}
}

func (l *GroupStackingListener) stacker() Stacker {
	s, _ := l.View().(Stacker)
	return s
}

func (l *GroupStackingListener) BeginGroup(params Params) {
	if s := l.stacker(); s != nil {
		s.PushAllStackableListeners()
	}
	l.ChainingListener.BeginGroup(params)
}

func (l *GroupStackingListener) EndGroup(params Params) {
	l.ChainingListener.EndGroup(params)
	if s := l.stacker(); s != nil {
		s.PopAllStackableListeners()
	}
}
