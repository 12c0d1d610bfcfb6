package domain

// CanMutate decides update/delete access: the owner recorded at creation, or
// an admin. Ownership is strict identity equality on the immutable owner
// field; it is never reassignable.
func CanMutate(actor Actor, l *Listing) bool {
	return actor.ID == l.OwnerID || actor.IsAdmin()
}

// CanRead decides single-listing read access. Publicly visible listings are
// readable by anyone, authenticated or not; non-public ones (drafts) only by
// their owner or an admin.
func CanRead(p *Profile, actor *Actor, l *Listing) bool {
	if p.IsPublic(l.Status) {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.ID == l.OwnerID || actor.IsAdmin()
}
