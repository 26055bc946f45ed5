package identity

// Principal is the authenticated caller as asserted by the JWT middleware.
// The booking core trusts it without re-verifying; every coordinator and
// aggregation call takes it explicitly instead of reading ambient state.
type Principal struct {
	UserID       uint
	Role         string
	BarbershopID uint // zero for clients
}

func (p Principal) IsClient() bool  { return p.Role == "client" }
func (p Principal) IsBarber() bool  { return p.Role == "barber" }
func (p Principal) IsManager() bool { return p.Role == "manager" }

// Staff reports whether the principal belongs to a barbershop.
func (p Principal) Staff() bool { return p.IsBarber() || p.IsManager() }
