package certify

import (
	"fmt"
	"strings"
	"time"
)

// AgeUnknown is rendered when the resident has no recorded birthdate. Issued
// paper documents used this literal, so renders keep it for stability.
const AgeUnknown = "[Age]"

// defaultCoWitness is the letterhead fallback for the oath co-witness when
// neither the barangay profile nor the request supplies one.
const defaultCoWitness = "CELESTE A. SAN BUENO"

// Resident is the subset of a resident record the binder needs. It is a
// plain value so the core stays independent of the persistence layer.
type Resident struct {
	FirstName   string
	MiddleName  string
	LastName    string
	Suffix      string
	Birthdate   *time.Time
	CivilStatus string
	Address     string
	Citizenship string
}

// Form carries the caller-supplied generation inputs, including letterhead
// and signatory overrides.
type Form struct {
	Purpose        string
	IssueDate      time.Time // zero value defaults to today
	SerialNumber   string
	PlaceIssued    string
	Amount         string
	BarangayName   string
	Municipality   string
	Province       string
	CaptainName    string
	SecretaryName  string
	CoWitnessName  string
	ResidencyYears string // years of residency quoted in the oath intro
}

// RenderContext is the bound, type-agnostic data needed to produce one
// certificate. It is immutable once built; every renderer receives the same
// value and none may read ambient state.
type RenderContext struct {
	Type          Type
	FullName      string
	Address       string
	Age           string
	MaritalStatus string
	Citizenship   string
	Purpose       string // raw; defaults resolve at composition time
	IssueDate     time.Time
	SerialNumber  string
	PlaceIssued   string
	BarangayName  string
	Municipality  string
	Province      string
	CaptainName   string
	SecretaryName string
	CoWitness     string
	ResidencyYrs  string
}

// Bind assembles the render context for one generation request. It is a pure
// function of its inputs and fails fast on missing resident names or serial
// number, before any renderer runs.
func Bind(r *Resident, t Type, form Form) (*RenderContext, error) {
	if _, err := Lookup(t); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &ValidationError{Field: "resident", Message: "a resident must be selected"}
	}
	if strings.TrimSpace(r.LastName) == "" || strings.TrimSpace(r.FirstName) == "" {
		return nil, &ValidationError{Field: "resident", Message: "resident must have a first and last name"}
	}
	if strings.TrimSpace(form.SerialNumber) == "" {
		return nil, &ValidationError{Field: "serial_number", Message: "missing serial number"}
	}

	issueDate := form.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	address := strings.TrimSpace(r.Address)
	if address == "" {
		address = fmt.Sprintf("%s, %s, %s", form.BarangayName, form.Municipality, form.Province)
	}

	citizenship := strings.TrimSpace(r.Citizenship)
	if citizenship == "" {
		citizenship = "Filipino"
	}

	maritalStatus := strings.TrimSpace(r.CivilStatus)
	if maritalStatus == "" {
		maritalStatus = "N/A"
	}

	coWitness := strings.TrimSpace(form.CoWitnessName)
	if coWitness == "" {
		coWitness = defaultCoWitness
	}

	residencyYears := strings.TrimSpace(form.ResidencyYears)
	if residencyYears == "" {
		residencyYears = "[Years]"
	}

	return &RenderContext{
		Type:          t,
		FullName:      FullName(r.FirstName, r.MiddleName, r.LastName, r.Suffix),
		Address:       address,
		Age:           AgeAt(r.Birthdate, issueDate),
		MaritalStatus: maritalStatus,
		Citizenship:   citizenship,
		Purpose:       strings.TrimSpace(form.Purpose),
		IssueDate:     issueDate,
		SerialNumber:  strings.TrimSpace(form.SerialNumber),
		PlaceIssued:   strings.TrimSpace(form.PlaceIssued),
		BarangayName:  form.BarangayName,
		Municipality:  form.Municipality,
		Province:      form.Province,
		CaptainName:   form.CaptainName,
		SecretaryName: form.SecretaryName,
		CoWitness:     coWitness,
		ResidencyYrs:  residencyYears,
	}, nil
}

// FullName joins name parts the way issued certificates print them: first
// name, middle initial with a period, last name, then suffix. Empty parts
// contribute no whitespace.
func FullName(first, middle, last, suffix string) string {
	parts := make([]string, 0, 4)
	if first = strings.TrimSpace(first); first != "" {
		parts = append(parts, first)
	}
	if middle = strings.TrimSpace(middle); middle != "" {
		parts = append(parts, string([]rune(middle)[0])+".")
	}
	if last = strings.TrimSpace(last); last != "" {
		parts = append(parts, last)
	}
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}

// AgeAt computes full years elapsed between birthdate and the issue date,
// decremented when the issue date's month/day precedes the birth month/day.
// Returns AgeUnknown when the birthdate is absent.
func AgeAt(birthdate *time.Time, on time.Time) string {
	if birthdate == nil {
		return AgeUnknown
	}
	years := on.Year() - birthdate.Year()
	if on.Month() < birthdate.Month() ||
		(on.Month() == birthdate.Month() && on.Day() < birthdate.Day()) {
		years--
	}
	return fmt.Sprintf("%d", years)
}

// BarangayLine is the letterhead locality line, e.g.
// "Barangay 635, City of Manila, Metro Manila".
func (rc *RenderContext) BarangayLine() string {
	return fmt.Sprintf("Barangay %s, %s, %s", rc.BarangayName, rc.Municipality, rc.Province)
}

// LongDate formats the issue date the way certificates print it,
// e.g. "15 March 2024".
func (rc *RenderContext) LongDate() string {
	return rc.IssueDate.Format("2 January 2006")
}

// SignedDateLine is the oath signing-date sentence fragment,
// e.g. "15th Day of March 2024".
func (rc *RenderContext) SignedDateLine() string {
	return fmt.Sprintf("%s Day of %s", ordinal(rc.IssueDate.Day()), rc.IssueDate.Format("January 2006"))
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
