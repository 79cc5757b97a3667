package user

// Principal is the authenticated caller as asserted by the clubhouse token
// introspection endpoint.
type Principal struct {
	UserID  string
	Email   string
	TeamIDs []string
}

// CanManageTeam reports whether the principal coaches the given team.
func (p Principal) CanManageTeam(teamID string) bool {
	for _, id := range p.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
