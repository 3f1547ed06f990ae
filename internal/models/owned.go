package models

import "time"

// Owner is the identity stamped onto a resource when it is created.
type Owner struct {
	UID    string
	Name   string
	UserID uint64
}

// OwnedResource is implemented by every user-authored record whose
// mutations are restricted to its author.
type OwnedResource interface {
	GetID() uint64
	GetAuthorUID() string
	AssignOwner(owner Owner)
	MarkCreated(at time.Time)
	MarkUpdated(at time.Time)
}

// Resource constrains a type parameter to a pointer to T implementing
// OwnedResource.
type Resource[T any] interface {
	*T
	OwnedResource
}
