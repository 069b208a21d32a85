package models

// ChangeSet is a classified set of changes since a cursor. It is produced
// fresh for every delta request and never persisted. Deleted carries record
// ids only: the soft-deleted payload body is not part of a change set.
type ChangeSet struct {
	Created []*Record
	Updated []*Record
	Deleted []string
}

// Total returns the number of changes across all three classes.
func (cs *ChangeSet) Total() int {
	return len(cs.Created) + len(cs.Updated) + len(cs.Deleted)
}

// Empty reports whether the change set carries no changes at all.
func (cs *ChangeSet) Empty() bool {
	return cs.Total() == 0
}
