package study

import "github.com/google/uuid"

// OwnerRef names the subject an artifact belongs to: exactly one note or
// exactly one group. The zero value is invalid; the only way to build one is
// through NoteOwner/GroupOwner, so "both set" and "neither set" are
// unrepresentable. The nullable note_id/group_id column pair exists only at
// the storage edge (see repos.ArtifactSetRepo).
type OwnerRef struct {
	noteID  *uuid.UUID
	groupID *uuid.UUID
}

func NoteOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{noteID: &id}
}

func GroupOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{groupID: &id}
}

func (o OwnerRef) NoteID() (uuid.UUID, bool) {
	if o.noteID == nil {
		return uuid.Nil, false
	}
	return *o.noteID, true
}

func (o OwnerRef) GroupID() (uuid.UUID, bool) {
	if o.groupID == nil {
		return uuid.Nil, false
	}
	return *o.groupID, true
}

// ID returns the owning subject id regardless of which side is set.
func (o OwnerRef) ID() uuid.UUID {
	if o.noteID != nil {
		return *o.noteID
	}
	if o.groupID != nil {
		return *o.groupID
	}
	return uuid.Nil
}

func (o OwnerRef) IsNote() bool  { return o.noteID != nil }
func (o OwnerRef) IsGroup() bool { return o.groupID != nil }
