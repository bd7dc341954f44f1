package git

// StatusFlags describes the state of one path in the index and the working tree.
type StatusFlags uint32

// Status bits.
const (
	IndexNew StatusFlags = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChange
	WtNew
	WtModified
	WtDeleted
	WtTypeChange
	WtRenamed
	Ignored
	Conflicted
)

const dirtyMask = IndexNew | IndexModified | IndexDeleted | IndexRenamed | IndexTypeChange |
	WtNew | WtModified | WtDeleted | WtTypeChange | WtRenamed

// IsDirty reports whether any non-ignored entry carries an uncommitted change.
func IsDirty(entries []StatusFlags) bool {
	for _, flags := range entries {
		if flags&Ignored != 0 {
			continue
		}
		if flags&dirtyMask != 0 {
			return true
		}
	}
	return false
}
