package models

import "time"

// PlayerSex matches the player_sex ENUM in the database.
type PlayerSex string

const (
	SexMale   PlayerSex = "male"
	SexFemale PlayerSex = "female"
)

// MaxRosterSize is the hard cap on players per team.
const MaxRosterSize = 12

type Player struct {
	ID            int       `json:"id" db:"id"`
	TeamID        int       `json:"team_id" db:"team_id"`
	Name          string    `json:"name" db:"name"`
	FatherName    string    `json:"father_name" db:"father_name"`
	DateOfBirth   time.Time `json:"date_of_birth" db:"date_of_birth"`
	Role          string    `json:"role" db:"role"`
	JerseyNumber  int       `json:"jersey_number" db:"jersey_number"`
	Sex           PlayerSex `json:"sex" db:"sex"`
	District      string    `json:"district" db:"district"`
	SchoolCollege string    `json:"school_college" db:"school_college"`
	Address       string    `json:"address" db:"address"`
	Email         string    `json:"email" db:"email"`
	Mobile        string    `json:"mobile" db:"mobile"`
	FederationNo  string    `json:"federation_no" db:"federation_no"`

	PhotoKey       *string `json:"-" db:"photo_key"`
	PhotoURL       *string `json:"photo_url,omitempty" db:"-"`
	CertificateKey *string `json:"-" db:"certificate_key"`
	CertificateURL *string `json:"certificate_url,omitempty" db:"-"`
}
