package model

// Attribute/op constants for the radcheck row written per customer.
// These are the FreeRADIUS conventions the external server expects.
const (
	RadcheckAttrPassword = "Cleartext-Password"
	RadcheckOpSet        = ":="

	// GroupPriority is the fixed priority for radusergroup assignments.
	GroupPriority = 1
)

// RadCheck is one credential row consumed by the external RADIUS server.
type RadCheck struct {
	ID        int64  `db:"id"`
	Username  string `db:"username"`
	Attribute string `db:"attribute"`
	Op        string `db:"op"`
	Value     string `db:"value"`
}

// RadUserGroup ties a login identifier to a service-profile group.
type RadUserGroup struct {
	Username  string `db:"username"`
	GroupName string `db:"groupname"`
	Priority  int    `db:"priority"`
}
