/*
Package matchsdk provides the wire types and a small client for the cofound
matchmaker API.

The same request and response types are used by the server handlers and by
the client, so a field rename shows up on both sides at compile time.

# Public and member calls

	client := matchsdk.NewSDKClient("https://api.cofound.example")

	stats, err := client.GetStats(ctx)
	reviews, err := client.ListApprovedReviews(ctx)
	_, err = client.JoinWaitlist(ctx, matchsdk.WaitlistRequest{Name: "Asha", Email: "asha@example.com"})

Calls that need an identity take a bearer token issued by the identity
provider:

	member := client.WithToken(accessToken)
	profile, err := member.SubmitProfile(ctx, req)
	matches, err := member.MyMatches(ctx)

# Admin calls

Admin calls need a token carrying admin:read or admin:write. The server is
the only authority on scopes; the client never checks them itself.

	admin := client.WithToken(adminToken)
	m, err := admin.CreateMatch(ctx, matchsdk.CreateMatchRequest{ProfileA: "u1", ProfileB: "u2"})
	m, err = admin.UpdateMatchStatus(ctx, m.ID, "introduced")

# Errors

Non-2xx responses are returned as *APIError. Use the Is helpers to branch:

	if matchsdk.IsInvalidTransition(err) {
		// someone else already advanced the match
	}
*/
package matchsdk
