package certify

// Type identifies one of the seven certificate templates.
type Type string

// The fixed certificate catalog. New types require a new Descriptor and a
// composition rule in compose.go; there is no runtime registration path.
const (
	TypeResidency Type = "residency"
	TypeIndigency Type = "indigency"
	TypeClearance Type = "clearance"
	TypeGeneral   Type = "general"
	TypeJobseeker Type = "jobseeker"
	TypeOath      Type = "oath"
	TypeGoodMoral Type = "good_moral"
)

// BodyKind describes the overall shape of a certificate body.
type BodyKind int

const (
	// BodyParagraphs is a free-paragraph body (general, good_moral).
	BodyParagraphs BodyKind = iota
	// BodyFields is an intro plus labeled requestor fields (clearance,
	// indigency, residency, jobseeker).
	BodyFields
	// BodyUndertaking is the numbered oath of undertaking.
	BodyUndertaking
)

// Descriptor is the immutable template metadata for one certificate type.
type Descriptor struct {
	Type           Type
	Label          string
	DocumentTitle  string
	SerialPrefix   string
	ValidityMonths int // 0 = validity not stated on the document
	Kind           BodyKind
}

var registry = map[Type]Descriptor{
	TypeResidency: {
		Type:           TypeResidency,
		Label:          "Certificate of Residency",
		DocumentTitle:  "CERTIFICATE OF RESIDENCY",
		SerialPrefix:   "RES",
		ValidityMonths: 6,
		Kind:           BodyFields,
	},
	TypeIndigency: {
		Type:           TypeIndigency,
		Label:          "Certificate of Indigency",
		DocumentTitle:  "CERTIFICATE OF INDIGENCY",
		SerialPrefix:   "IND",
		ValidityMonths: 6,
		Kind:           BodyFields,
	},
	TypeClearance: {
		Type:           TypeClearance,
		Label:          "Barangay Clearance",
		DocumentTitle:  "BARANGAY CLEARANCE",
		SerialPrefix:   "BC",
		ValidityMonths: 3,
		Kind:           BodyFields,
	},
	TypeGeneral: {
		Type:           TypeGeneral,
		Label:          "General Certificate",
		DocumentTitle:  "CERTIFICATION",
		SerialPrefix:   "GEN",
		ValidityMonths: 0,
		Kind:           BodyParagraphs,
	},
	TypeJobseeker: {
		Type:           TypeJobseeker,
		Label:          "First Time Job Seeker (RA 11261)",
		DocumentTitle:  "FIRST TIME JOB SEEKER (RA 11261)",
		SerialPrefix:   "FJS",
		ValidityMonths: 3,
		Kind:           BodyFields,
	},
	TypeOath: {
		Type:           TypeOath,
		Label:          "Oath of Undertaking",
		DocumentTitle:  "OATH OF UNDERTAKING",
		SerialPrefix:   "OOU",
		ValidityMonths: 0,
		Kind:           BodyUndertaking,
	},
	TypeGoodMoral: {
		Type:           TypeGoodMoral,
		Label:          "Certificate of Good Moral",
		DocumentTitle:  "CERTIFICATE OF GOOD MORAL",
		SerialPrefix:   "GMC",
		ValidityMonths: 3,
		Kind:           BodyParagraphs,
	},
}

// order fixes the catalog ordering for pickers and table-driven consumers.
var order = []Type{
	TypeResidency,
	TypeIndigency,
	TypeClearance,
	TypeGeneral,
	TypeJobseeker,
	TypeOath,
	TypeGoodMoral,
}

// Lookup returns the descriptor for a certificate type.
func Lookup(t Type) (Descriptor, error) {
	d, ok := registry[t]
	if !ok {
		return Descriptor{}, &UnknownTypeError{Type: t}
	}
	return d, nil
}

// Types returns all certificate types in catalog order.
func Types() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}
