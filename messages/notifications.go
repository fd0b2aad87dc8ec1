package messages

// Notification is the closed union over every notification-capable message.
// Exactly the record types in this package implement it; the unexported
// marker keeps the set closed, so a type switch over all variants is
// exhaustive by construction.
type Notification interface {
	notification()
}

func (*ClientEnterView) notification()        {}
func (*ClientLeftView) notification()         {}
func (*ClientMoved) notification()            {}
func (*ClientPoked) notification()            {}
func (*TextMessage) notification()            {}
func (*ChannelCreated) notification()         {}
func (*ChannelEdited) notification()          {}
func (*ChannelDeleted) notification()         {}
func (*ServerEdited) notification()           {}
func (*ClientUpdated) notification()          {}
func (*ClientConnectionInfo) notification()   {}
func (*ServerGroupClientAdded) notification() {}
func (*PermissionDenied) notification()       {}
func (*CommandError) notification()           {}
