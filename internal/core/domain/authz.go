package domain

// CanAccess is the single ownership predicate used by every service that
// guards a client-owned resource: admins always pass, everyone else must be
// the owning client. Keeping it in one place prevents the per-service checks
// from drifting apart.
func CanAccess(callerID, callerRole, ownerID string) bool {
	if callerRole == RoleAdmin {
		return true
	}
	return callerID != "" && callerID == ownerID
}
