package users

import "fmt"

// Profile is the server side record of a player, fetched from
// GET /api/utenti/{id} or returned by login.
type Profile struct {
	ID        ID     `json:"id"`                       // Unique identifier, numeric on the wire
	FirstName string `json:"nome"`                     // First name
	LastName  string `json:"cognome"`                  // Last name
	Email     string `json:"email"`                    // Email, also the login name
	Enrolled  bool   `json:"iscritto_al_torneo"`       // Enrolled in the tournament
	Organizer bool   `json:"organizzatore_del_torneo"` // May manage matches
}

// FullName joins first and last name for display.
func (p *Profile) FullName() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// ProfileUpdate is a partial change applied locally once the effect of an
// action is already known. Nil fields are left alone.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Enrolled  *bool
	Organizer *bool
}

// Apply returns a copy of p with the non-nil fields of u written over it.
func (p Profile) Apply(u ProfileUpdate) Profile {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Enrolled != nil {
		p.Enrolled = *u.Enrolled
	}
	if u.Organizer != nil {
		p.Organizer = *u.Organizer
	}
	return p
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Enrolled == nil && u.Organizer == nil
}
