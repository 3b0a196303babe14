package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Resident represents one resident record
type Resident struct {
	ID               uuid.UUID `json:"id"`
	LastName         string    `json:"last_name"`
	FirstName        string    `json:"first_name"`
	MiddleName       string    `json:"middle_name,omitempty"`
	Suffix           string    `json:"suffix,omitempty"`
	Sex              string    `json:"sex"`
	Birthdate        *Date     `json:"birthdate,omitempty"`
	CivilStatus      string    `json:"civil_status,omitempty"`
	ContactNo        string    `json:"contact_no,omitempty"`
	Address          string    `json:"address,omitempty"`
	Citizenship      string    `json:"citizenship"`
	EmploymentStatus string    `json:"employment_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Household represents one household record; MemberCount is derived
type Household struct {
	ID            uuid.UUID `json:"id"`
	HouseholdName string    `json:"household_name"`
	Address       string    `json:"address"`
	Purok         string    `json:"purok,omitempty"`
	MemberCount   int       `json:"member_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// HouseholdMember joins a resident into a household; Age is derived from the
// resident's birthdate at query time
type HouseholdMember struct {
	ID               uuid.UUID `json:"id"`
	ResidentID       uuid.UUID `json:"resident_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	MiddleName       string    `json:"middle_name,omitempty"`
	Suffix           string    `json:"suffix,omitempty"`
	Birthdate        *Date     `json:"birthdate,omitempty"`
	CivilStatus      string    `json:"civil_status,omitempty"`
	ContactNo        string    `json:"contact_no,omitempty"`
	EmploymentStatus string    `json:"employment_status,omitempty"`
	RelationToHead   string    `json:"relation_to_head,omitempty"`
	Age              *int      `json:"age,omitempty"`
}

// Incident represents one blotter record with optional resident links
type Incident struct {
	ID                   uuid.UUID  `json:"id"`
	IncidentDate         Date       `json:"incident_date"`
	IncidentType         string     `json:"incident_type"`
	Location             string     `json:"location,omitempty"`
	Description          string     `json:"description,omitempty"`
	ComplainantID        *uuid.UUID `json:"complainant_id,omitempty"`
	ComplainantName      string     `json:"complainant_name,omitempty"`
	RespondentID         *uuid.UUID `json:"respondent_id,omitempty"`
	Status               string     `json:"status"`
	ComplainantFirstName string     `json:"complainant_first_name,omitempty"`
	ComplainantLastName  string     `json:"complainant_last_name,omitempty"`
	RespondentFirstName  string     `json:"respondent_first_name,omitempty"`
	RespondentLastName   string     `json:"respondent_last_name,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// Service represents one barangay service or program
type Service struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"service_name"`
	Description string    `json:"description,omitempty"`
	ServiceDate *Date     `json:"service_date,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceBeneficiary joins a resident to a service
type ServiceBeneficiary struct {
	ID         uuid.UUID `json:"id"`
	ResidentID uuid.UUID `json:"resident_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Notes      string    `json:"notes,omitempty"`
}

// Official represents one barangay official, with optional uploaded signature
// and photo paths served from the uploads directory
type Official struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Position      string    `json:"position"`
	OrderNo       int       `json:"order_no"`
	IsCaptain     bool      `json:"is_captain"`
	IsSecretary   bool      `json:"is_secretary"`
	SignaturePath string    `json:"signature_path,omitempty"`
	PhotoPath     string    `json:"photo_path,omitempty"`
}

// Profile is the single-row barangay letterhead record
type Profile struct {
	ID           uuid.UUID `json:"id"`
	BarangayName string    `json:"barangay_name"`
	Municipality string    `json:"municipality"`
	Province     string    `json:"province"`
	PlaceIssued  string    `json:"place_issued,omitempty"`
}

// Certificate represents one issued-certificate record, joined with the
// resident's name parts for display
type Certificate struct {
	ID              uuid.UUID `json:"id"`
	ResidentID      uuid.UUID `json:"resident_id"`
	CertificateType string    `json:"certificate_type"`
	SerialNumber    string    `json:"serial_number"`
	Purpose         string    `json:"purpose,omitempty"`
	IssueDate       Date      `json:"issue_date"`
	PlaceIssued     string    `json:"place_issued,omitempty"`
	Amount          string    `json:"amount,omitempty"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	MiddleName      string    `json:"middle_name,omitempty"`
	Suffix          string    `json:"suffix,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// HistoryLog is one audit-trail entry
type HistoryLog struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"-"`
	UserRole        string     `json:"user_role"`
	UserName        string     `json:"user_name"`
	Action          string     `json:"action"`
	ModuleType      string     `json:"module_type,omitempty"`
	CertificateType string     `json:"certificate_type,omitempty"`
	ResidentID      *uuid.UUID `json:"-"`
	ResidentName    string     `json:"resident_name,omitempty"`
	Details         string     `json:"details,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// User represents a staff account
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Date is a custom type for handling SQL DATE (YYYY-MM-DD)
type Date struct {
	time.Time
}

// Scan implements the Scanner interface
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return errors.New("failed to scan Date")
	}
	d.Time = t
	return nil
}

// Value implements the Valuer interface
func (d *Date) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return d.Time, nil
}

// MarshalJSON implements json.Marshaler
func (d *Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	// Trim quotes
	if len(str) > 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	var err error
	d.Time, err = time.Parse("2006-01-02", str)
	return err
}
