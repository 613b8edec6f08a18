package domain

// CanAccess decides whether a subscriber at the given tier may view a
// content item. Pure function; callers must re-evaluate per request rather
// than caching the result against stale subscription state.
//
// Rules:
//   - Free content is always accessible.
//   - Premium content with no required tier is open to any subscriber.
//   - Otherwise the subscriber's tier must rank at or above the required
//     tier (T1 < T2 < T3).
//
// Draft visibility is an ownership concern and is handled by the content
// service, not here.
func CanAccess(subscriberTier Tier, item ContentItem) bool {
	if !item.IsPremium {
		return true
	}
	if item.RequiredTier == nil {
		return subscriberTier.IsValid()
	}
	return subscriberTier.AtLeast(*item.RequiredTier)
}
