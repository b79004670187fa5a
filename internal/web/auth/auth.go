package auth

// IsOwner reports whether the current session user owns a resource.
// Exact value match only: no role hierarchy, no admin override. An
// unauthenticated user (id 0) owns nothing.
func IsOwner(currentUserID, resourceUserID int64) bool {
	return currentUserID != 0 && currentUserID == resourceUserID
}
