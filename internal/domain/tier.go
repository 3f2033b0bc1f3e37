package domain

import "fmt"

// RelationTier selects which relation-graph-derived content set a
// recommendation request targets.
type RelationTier string

const (
	// TierMate is content authored by the requester's linked co-parent(s).
	TierMate RelationTier = "mate"
	// TierFriendUnread is content authored by confirmed connections that
	// the requester has not yet opened.
	TierFriendUnread RelationTier = "friend_unread"
	// TierNeighbor is discovery-pool content from non-connected authors.
	TierNeighbor RelationTier = "neighbor"
)

// IsValid reports whether the tier is one of the closed set.
func (t RelationTier) IsValid() bool {
	switch t {
	case TierMate, TierFriendUnread, TierNeighbor:
		return true
	}
	return false
}

func (t RelationTier) String() string { return string(t) }

// Wire vocabulary for relation tiers. The public names predate the internal
// ones and do not match them ("friend" means the mate tier); they are kept
// as-is for client compatibility.
const (
	WireTierFriend     = "friend"
	WireTierFriendRead = "friend_read"
	WireTierNeighbor   = "neighbor"
)

// ParseWireTier maps the wire vocabulary onto a RelationTier.
func ParseWireTier(s string) (RelationTier, error) {
	switch s {
	case WireTierFriend:
		return TierMate, nil
	case WireTierFriendRead:
		return TierFriendUnread, nil
	case WireTierNeighbor:
		return TierNeighbor, nil
	}
	return "", fmt.Errorf("%w: unknown tier %q", ErrValidation, s)
}
