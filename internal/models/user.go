package models

// User profiles are keyed by the auth uid. Only the fields this service
// reads are modelled.
type User struct {
	ID          string `bson:"_id" json:"id"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	DisplayName string `bson:"displayName,omitempty" json:"displayName,omitempty"`
}

// BestName prefers name over displayName, matching how transition emails
// address the student.
func (u *User) BestName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.DisplayName
}
