// Package access decides whether a principal may perform an operation on a document.
// The checks are pure: no I/O and no side effects.
package access

import (
	"pdfshare/internal/apperr"
	"pdfshare/internal/model"
)

// Op names an operation subject to authorization.
type Op string

const (
	OpRead   Op = "read"
	OpShare  Op = "share"
	OpDelete Op = "delete"
)

// CanRead is true iff principal owns doc or is in its sharing set.
func CanRead(principal string, doc *model.Document) bool {
	if principal == "" || doc == nil {
		return false
	}
	return principal == doc.Owner || doc.IsSharedWith(principal)
}

// CanWriteShare is true iff principal owns doc.
func CanWriteShare(principal string, doc *model.Document) bool {
	return isOwner(principal, doc)
}

// CanDelete is true iff principal owns doc.
func CanDelete(principal string, doc *model.Document) bool {
	return isOwner(principal, doc)
}

// Allowed dispatches op to its rule. Unknown ops are denied.
func Allowed(op Op, principal string, doc *model.Document) bool {
	switch op {
	case OpRead:
		return CanRead(principal, doc)
	case OpShare:
		return CanWriteShare(principal, doc)
	case OpDelete:
		return CanDelete(principal, doc)
	default:
		return false
	}
}

// Check returns a Forbidden error when op is not allowed.
func Check(op Op, principal string, doc *model.Document) error {
	if Allowed(op, principal, doc) {
		return nil
	}
	return apperr.Newf(apperr.KindForbidden, "not allowed to %s this document", op)
}

func isOwner(principal string, doc *model.Document) bool {
	if principal == "" || doc == nil {
		return false
	}
	return principal == doc.Owner
}
