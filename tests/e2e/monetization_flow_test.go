//go:build e2e

package e2e_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createContentItem creates a content item for the creator behind token and
// returns its ID. requiredTier may be empty for non-tiered content.
func createContentItem(t *testing.T, ts *testServer, token, title, contentType string, premium bool, requiredTier string) uuid.UUID {
	t.Helper()

	input := map[string]any{
		"title":     title,
		"type":      contentType,
		"isPremium": premium,
	}
	if requiredTier != "" {
		input["requiredTier"] = requiredTier
	}

	_, result := ts.graphqlQuery(t, `
		mutation($input: CreateContentInput!) {
			createContent(input: $input) { id status }
		}`,
		map[string]any{"input": input}, token)
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "createContent")
	assert.Equal(t, "DRAFT", payload["status"])

	id, err := uuid.Parse(payload["id"].(string))
	require.NoError(t, err)
	return id
}

// publishContentItem publishes a draft and asserts the status transition.
func publishContentItem(t *testing.T, ts *testServer, token string, id uuid.UUID) {
	t.Helper()

	_, result := ts.graphqlQuery(t, `
		mutation($id: UUID!) {
			publishContent(id: $id) { id status publishedAt }
		}`,
		map[string]any{"id": id.String()}, token)
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "publishContent")
	assert.Equal(t, "PUBLISHED", payload["status"])
	assert.NotNil(t, payload["publishedAt"])
}

// TestE2E_Monetization_SubscriptionLifecycle covers subscribing, tier
// upgrade on re-subscribe, and both sides of the subscriber relationship.
func TestE2E_Monetization_SubscriptionLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	creatorToken, _ := registerUser(t, ts)
	creatorID := createCreator(t, ts, creatorToken)

	fanToken, _ := registerUser(t, ts)

	// Subscribe at T2.
	_, result := ts.graphqlQuery(t, `
		mutation($input: SubscribeInput!) {
			subscribe(input: $input) { id tier creatorId }
		}`,
		map[string]any{"input": map[string]any{
			"creatorId": creatorID.String(),
			"tier":      "T2",
		}}, fanToken)
	requireNoErrors(t, result)
	sub := gqlPayload(t, result, "subscribe")
	assert.Equal(t, "T2", sub["tier"])
	assert.Equal(t, creatorID.String(), sub["creatorId"])

	// mySubscription reflects the tier and resolves the creator.
	_, result = ts.graphqlQuery(t, `
		query($creatorId: UUID!) {
			mySubscription(creatorId: $creatorId) {
				tier
				creator { id displayName }
			}
		}`,
		map[string]any{"creatorId": creatorID.String()}, fanToken)
	requireNoErrors(t, result)
	mySub := gqlPayload(t, result, "mySubscription")
	assert.Equal(t, "T2", mySub["tier"])
	assert.Equal(t, creatorID.String(), mySub["creator"].(map[string]any)["id"])

	// Re-subscribing upgrades the tier in place.
	_, result = ts.graphqlQuery(t, `
		mutation($input: SubscribeInput!) {
			subscribe(input: $input) { tier }
		}`,
		map[string]any{"input": map[string]any{
			"creatorId": creatorID.String(),
			"tier":      "T3",
		}}, fanToken)
	requireNoErrors(t, result)
	assert.Equal(t, "T3", gqlPayload(t, result, "subscribe")["tier"])

	// The creator sees exactly one subscriber.
	_, result = ts.graphqlQuery(t, `
		query {
			mySubscribers(limit: 10) {
				total
				items { tier }
			}
		}`, nil, creatorToken)
	requireNoErrors(t, result)
	page := gqlPayload(t, result, "mySubscribers")
	assert.Equal(t, float64(1), page["total"])

	// subscriberCount on the public profile agrees.
	_, result = ts.graphqlQuery(t, `
		query($id: UUID!) {
			creator(id: $id) { subscriberCount }
		}`,
		map[string]any{"id": creatorID.String()}, "")
	requireNoErrors(t, result)
	assert.Equal(t, float64(1), gqlPayload(t, result, "creator")["subscriberCount"])
}

// TestE2E_Monetization_SelfSubscription verifies a creator cannot subscribe
// to their own profile.
func TestE2E_Monetization_SelfSubscription(t *testing.T) {
	ts := setupTestServer(t)

	creatorToken, _ := registerUser(t, ts)
	creatorID := createCreator(t, ts, creatorToken)

	_, result := ts.graphqlQuery(t, `
		mutation($input: SubscribeInput!) {
			subscribe(input: $input) { id }
		}`,
		map[string]any{"input": map[string]any{
			"creatorId": creatorID.String(),
			"tier":      "T1",
		}}, creatorToken)
	assert.Equal(t, "CONFLICT", gqlErrorCode(t, result))
}

// TestE2E_Monetization_NoSubscriptionIsNull verifies mySubscription returns
// null rather than an error when no subscription exists.
func TestE2E_Monetization_NoSubscriptionIsNull(t *testing.T) {
	ts := setupTestServer(t)

	creatorToken, _ := registerUser(t, ts)
	creatorID := createCreator(t, ts, creatorToken)
	fanToken, _ := registerUser(t, ts)

	_, result := ts.graphqlQuery(t, `
		query($creatorId: UUID!) {
			mySubscription(creatorId: $creatorId) { id }
		}`,
		map[string]any{"creatorId": creatorID.String()}, fanToken)
	requireNoErrors(t, result)

	data := gqlData(t, result)
	assert.Nil(t, data["mySubscription"])
}

// TestE2E_Monetization_ContentGating walks tiered access end to end: a T2
// subscriber reaches T2 content, is refused T3 content, and an anonymous
// reader only reaches the free item.
func TestE2E_Monetization_ContentGating(t *testing.T) {
	ts := setupTestServer(t)

	creatorToken, _ := registerUser(t, ts)
	creatorID := createCreator(t, ts, creatorToken)

	freeID := createContentItem(t, ts, creatorToken, "Shop Safety Basics", "VIDEO", false, "")
	midID := createContentItem(t, ts, creatorToken, "Dovetail Deep Dive", "VIDEO", true, "T2")
	topID := createContentItem(t, ts, creatorToken, "Full Plans Download", "DOWNLOAD", true, "T3")
	publishContentItem(t, ts, creatorToken, freeID)
	publishContentItem(t, ts, creatorToken, midID)
	publishContentItem(t, ts, creatorToken, topID)

	fanToken, _ := registerUser(t, ts)
	_, result := ts.graphqlQuery(t, `
		mutation($input: SubscribeInput!) {
			subscribe(input: $input) { id }
		}`,
		map[string]any{"input": map[string]any{
			"creatorId": creatorID.String(),
			"tier":      "T2",
		}}, fanToken)
	requireNoErrors(t, result)

	itemQuery := `query($id: UUID!) { contentItem(id: $id) { id title } }`

	// T2 subscriber reaches free and T2 content.
	for _, id := range []uuid.UUID{freeID, midID} {
		_, result = ts.graphqlQuery(t, itemQuery, map[string]any{"id": id.String()}, fanToken)
		requireNoErrors(t, result)
	}

	// T3 content is out of reach.
	_, result = ts.graphqlQuery(t, itemQuery, map[string]any{"id": topID.String()}, fanToken)
	assert.Equal(t, "FORBIDDEN", gqlErrorCode(t, result))

	// Anonymous readers only reach the free item.
	_, result = ts.graphqlQuery(t, itemQuery, map[string]any{"id": freeID.String()}, "")
	requireNoErrors(t, result)
	_, result = ts.graphqlQuery(t, itemQuery, map[string]any{"id": midID.String()}, "")
	assert.Equal(t, "FORBIDDEN", gqlErrorCode(t, result))

	// The listing filters to what the viewer can access.
	listQuery := `query($creatorId: UUID!) { creatorContent(creatorId: $creatorId) { id } }`

	_, result = ts.graphqlQuery(t, listQuery, map[string]any{"creatorId": creatorID.String()}, fanToken)
	requireNoErrors(t, result)
	assert.Len(t, gqlList(t, result, "creatorContent"), 2)

	_, result = ts.graphqlQuery(t, listQuery, map[string]any{"creatorId": creatorID.String()}, "")
	requireNoErrors(t, result)
	assert.Len(t, gqlList(t, result, "creatorContent"), 1)

	// The owner sees everything.
	_, result = ts.graphqlQuery(t, listQuery, map[string]any{"creatorId": creatorID.String()}, creatorToken)
	requireNoErrors(t, result)
	assert.Len(t, gqlList(t, result, "creatorContent"), 3)
}

// TestE2E_Monetization_DraftsHiddenFromNonOwners verifies that unpublished
// content reads as NOT_FOUND for everyone but the owner.
func TestE2E_Monetization_DraftsHiddenFromNonOwners(t *testing.T) {
	ts := setupTestServer(t)

	creatorToken, _ := registerUser(t, ts)
	createCreator(t, ts, creatorToken)
	draftID := createContentItem(t, ts, creatorToken, "Work in Progress", "ARTICLE", false, "")

	itemQuery := `query($id: UUID!) { contentItem(id: $id) { id status } }`

	// Owner sees the draft.
	_, result := ts.graphqlQuery(t, itemQuery, map[string]any{"id": draftID.String()}, creatorToken)
	requireNoErrors(t, result)
	assert.Equal(t, "DRAFT", gqlPayload(t, result, "contentItem")["status"])

	// Everyone else gets NOT_FOUND, not FORBIDDEN.
	otherToken, _ := registerUser(t, ts)
	_, result = ts.graphqlQuery(t, itemQuery, map[string]any{"id": draftID.String()}, otherToken)
	assert.Equal(t, "NOT_FOUND", gqlErrorCode(t, result))
}

// TestE2E_Monetization_ContentOwnership verifies that only the owner can
// mutate content items.
func TestE2E_Monetization_ContentOwnership(t *testing.T) {
	ts := setupTestServer(t)

	creatorToken, _ := registerUser(t, ts)
	createCreator(t, ts, creatorToken)
	itemID := createContentItem(t, ts, creatorToken, "Router Table Build", "VIDEO", true, "T1")

	// A rival creator cannot touch it.
	rivalToken, _ := registerUser(t, ts)
	createCreator(t, ts, rivalToken)

	_, result := ts.graphqlQuery(t, `
		mutation($id: UUID!) { publishContent(id: $id) { id } }`,
		map[string]any{"id": itemID.String()}, rivalToken)
	assert.Equal(t, "FORBIDDEN", gqlErrorCode(t, result))

	_, result = ts.graphqlQuery(t, `
		mutation($id: UUID!) { deleteContent(id: $id) }`,
		map[string]any{"id": itemID.String()}, rivalToken)
	assert.Equal(t, "FORBIDDEN", gqlErrorCode(t, result))

	// The owner clears the tier requirement and deletes.
	_, result = ts.graphqlQuery(t, `
		mutation($input: UpdateContentInput!) {
			updateContent(input: $input) { id isPremium requiredTier }
		}`,
		map[string]any{"input": map[string]any{
			"id":                itemID.String(),
			"isPremium":         false,
			"clearRequiredTier": true,
		}}, creatorToken)
	requireNoErrors(t, result)
	updated := gqlPayload(t, result, "updateContent")
	assert.Equal(t, false, updated["isPremium"])
	assert.Nil(t, updated["requiredTier"])

	_, result = ts.graphqlQuery(t, `
		mutation($id: UUID!) { deleteContent(id: $id) }`,
		map[string]any{"id": itemID.String()}, creatorToken)
	requireNoErrors(t, result)
	assert.Equal(t, true, gqlData(t, result)["deleteContent"])
}

// TestE2E_Monetization_ProfileUpdate verifies partial creator profile
// updates leave untouched fields alone.
func TestE2E_Monetization_ProfileUpdate(t *testing.T) {
	ts := setupTestServer(t)

	creatorToken, _ := registerUser(t, ts)
	createCreator(t, ts, creatorToken)

	_, result := ts.graphqlQuery(t, `
		mutation($input: UpdateCreatorProfileInput!) {
			updateCreatorProfile(input: $input) { displayName niche bio }
		}`,
		map[string]any{"input": map[string]any{
			"bio": "Twenty years of sawdust.",
		}}, creatorToken)
	requireNoErrors(t, result)

	profile := gqlPayload(t, result, "updateCreatorProfile")
	assert.Equal(t, "Workshop Diaries", profile["displayName"])
	assert.Equal(t, "woodworking", profile["niche"])
	assert.Equal(t, "Twenty years of sawdust.", profile["bio"])
}

// TestE2E_Monetization_DuplicateCreatorProfile verifies one profile per user.
func TestE2E_Monetization_DuplicateCreatorProfile(t *testing.T) {
	ts := setupTestServer(t)

	token, _ := registerUser(t, ts)
	createCreator(t, ts, token)

	_, result := ts.graphqlQuery(t, `
		mutation($input: CreateCreatorProfileInput!) {
			createCreatorProfile(input: $input) { id }
		}`,
		map[string]any{"input": map[string]any{
			"displayName": "Second Channel",
			"niche":       "metalworking",
		}}, token)
	assert.Equal(t, "ALREADY_EXISTS", gqlErrorCode(t, result))
}
