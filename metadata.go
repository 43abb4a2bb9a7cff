package wiki

// MetaDataListener keeps the metadata of the open document and metadata
// scopes. Lookups search from the innermost scope outwards.
type MetaDataListener struct {
	ChainingListener

	scopes []MetaData
}

func NewMetaDataListener() *MetaDataListener {
	return &MetaDataListener{}
}

// MetaData returns the innermost non-nil value of key, or nil.
func (l *MetaDataListener) MetaData(key string) any {
	for i := len(l.scopes) - 1; i >= 0; i-- {
		if v := l.scopes[i].Get(key); v != nil {
			return v
		}
	}
	return nil
}

// AllMetaData returns every non-nil value of key in the open scopes,
// innermost first.
func (l *MetaDataListener) AllMetaData(key string) []any {
	var vs []any
	for i := len(l.scopes) - 1; i >= 0; i-- {
		if v := l.scopes[i].Get(key); v != nil {
			vs = append(vs, v)
		}
	}
	return vs
}

// Depth returns the number of open scopes.
func (l *MetaDataListener) Depth() int { return len(l.scopes) }

func (l *MetaDataListener) BeginDocument(meta MetaData) {
	l.scopes = append(l.scopes, meta)
	l.ChainingListener.BeginDocument(meta)
}

func (l *MetaDataListener) EndDocument(meta MetaData) {
	l.ChainingListener.EndDocument(meta)
	l.scopes = pop(l.scopes)
}

func (l *MetaDataListener) BeginMetaData(meta MetaData) {
	l.scopes = append(l.scopes, meta)
	l.ChainingListener.BeginMetaData(meta)
}

func (l *MetaDataListener) EndMetaData(meta MetaData) {
	l.ChainingListener.EndMetaData(meta)
	l.scopes = pop(l.scopes)
}
