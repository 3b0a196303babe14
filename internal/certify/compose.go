package certify

import (
	"fmt"
	"strings"
)

func upper(s string) string { return strings.ToUpper(s) }

// BlockKind tags one semantic unit of certificate content.
type BlockKind int

const (
	// KindParagraph is justified running text.
	KindParagraph BlockKind = iota
	// KindLabeledField is an underlined label/value pair.
	KindLabeledField
	// KindNumberedItem is one clause of a numbered undertaking.
	KindNumberedItem
	// KindSignature is a signature row of one or two signatories.
	KindSignature
	// KindSectionBreak is extra vertical separation between sections.
	KindSectionBreak
)

// Signatory is one name/title pair in a signature row.
type Signatory struct {
	Name  string
	Title string
}

// Block is one semantic unit of certificate content. The composer produces
// the ordered block list exactly once per generation; every renderer consumes
// the same list read-only, so the three output formats cannot drift.
type Block struct {
	Kind        BlockKind
	Text        string // KindParagraph, KindNumberedItem
	Index       int    // KindNumberedItem, 1-based
	Label       string // KindLabeledField
	Value       string // KindLabeledField
	Signatories []Signatory
	// Salutation marks a short left-aligned line ("TO WHOM IT MAY CONCERN:")
	// rather than a justified paragraph.
	Salutation bool
	// SealNote asks renderers to print the dry-seal reminder opposite the
	// signature row.
	SealNote bool
}

// PlainText returns the semantic text of a block, used to verify that every
// renderer surfaces identical ordered content.
func (b Block) PlainText() []string {
	switch b.Kind {
	case KindParagraph:
		return []string{b.Text}
	case KindLabeledField:
		return []string{b.Label + ": " + b.Value}
	case KindNumberedItem:
		return []string{fmt.Sprintf("%d. %s", b.Index, b.Text)}
	case KindSignature:
		lines := make([]string, 0, len(b.Signatories))
		for _, s := range b.Signatories {
			lines = append(lines, s.Name+" - "+s.Title)
		}
		return lines
	default:
		return nil
	}
}

func paragraph(text string) Block  { return Block{Kind: KindParagraph, Text: text} }
func salutation(text string) Block { return Block{Kind: KindParagraph, Text: text, Salutation: true} }
func field(label, value string) Block {
	return Block{Kind: KindLabeledField, Label: label, Value: value}
}
func item(index int, text string) Block {
	return Block{Kind: KindNumberedItem, Index: index, Text: text}
}
func sectionBreak() Block { return Block{Kind: KindSectionBreak} }

// The nine clauses of the RA 11261 oath of undertaking. Statutory wording;
// only the intro paragraph interpolates resident data.
var oathClauses = []string{
	"That this is the first time that I will actively look for a job, and therefore requesting that a Barangay Certification be issued in my favor to avail the benefits of the law;",
	"That I am aware that the benefit and privilege/s under the said law shall be valid only for one (1) year from the date that the Barangay Certification is issued;",
	"That I can avail the benefits of the law only once;",
	"That I understand that my personal information shall be included in the Roster/List of the First Time Jobseekers and will not be used for any unlawful purpose;",
	"That I will inform and/or report to the Barangay personally, through text or other means, or through my family/relatives once I get employed; and",
	"That I am not a beneficiary of the Job Start Program under R.A. No. 10869 and other laws that give similar exemptions for the documents or transactions exempted under R.A. No. 11261;",
	"That if issued the requested Certification, I will not use the same in any fraud, and neither falsifies nor helps and/or assists in the fabrication of the said certification.",
	"That this undertaking is made solely for the purpose of obtaining a Barangay Certification consistent with the objective of R.A. No. 11261 and not for any other purpose.",
	"That I consent to the use of my personal information pursuant to the Data Privacy Act and other applicable laws, rules, and regulations.",
}

// Compose derives the ordered content blocks for one certificate. This is
// the single source of truth for certificate wording: renderers interpret
// the returned blocks and never re-derive text themselves.
func Compose(rc *RenderContext, t Type) ([]Block, error) {
	desc, err := Lookup(t)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	switch t {
	case TypeClearance:
		blocks = composeClearance(rc)
	case TypeResidency:
		blocks = composeResidency(rc)
	case TypeIndigency:
		blocks = composeIndigency(rc)
	case TypeJobseeker:
		blocks = composeJobseeker(rc)
	case TypeGeneral:
		blocks = composeGeneral(rc)
	case TypeGoodMoral:
		blocks = composeGoodMoral(rc)
	case TypeOath:
		blocks = composeOath(rc)
	}

	if desc.Kind != BodyUndertaking {
		blocks = append(blocks, sectionBreak(), paragraph(validityText(rc, desc)))
		blocks = append(blocks, sectionBreak(), captainSignature(rc))
	}
	return blocks, nil
}

// purposeOrDefault resolves a blank purpose at composition time so all
// renderers see the same resolved text.
func purposeOrDefault(rc *RenderContext, t Type) string {
	if rc.Purpose != "" {
		return rc.Purpose
	}
	if t == TypeGeneral {
		return "BIR Requirement"
	}
	return "Personal Use"
}

// validityText is the issued-on paragraph; the validity sentence is appended
// only for types with a stated validity window.
func validityText(rc *RenderContext, desc Descriptor) string {
	text := fmt.Sprintf("Issued on %s at %s, Philippines.", rc.LongDate(), rc.BarangayLine())
	if desc.ValidityMonths > 0 {
		text += fmt.Sprintf(" Moreover, this certificate is VALID only for %d MONTHS FROM THE DATE ISSUED.", desc.ValidityMonths)
	}
	return text
}

func captainSignature(rc *RenderContext) Block {
	return Block{
		Kind:        KindSignature,
		Signatories: []Signatory{{Name: upper(rc.CaptainName), Title: "Punong Barangay"}},
		SealNote:    true,
	}
}

func composeClearance(rc *RenderContext) []Block {
	return []Block{
		paragraph("This is to certify that the person (the requestor), whose information is indicated below, is known to me as a bona fide resident of this barangay. Further, I certify that he/she is found to have NO DEROGATORY RECORD in our Barangay."),
		field("Requestor's Name", upper(rc.FullName)),
		field("Postal Address", rc.Address),
		field("Marital Status", rc.MaritalStatus),
		field("Citizenship", rc.Citizenship),
		sectionBreak(),
		paragraph("This certification is being issued upon the request of the aforementioned individual for the purpose below:"),
		field("Purpose", purposeOrDefault(rc, TypeClearance)),
	}
}

func composeResidency(rc *RenderContext) []Block {
	return []Block{
		paragraph("This is to certify that the person (the requestor), whose information is indicated below, is known to me as a bona fide resident of this barangay."),
		field("Requestor's Name", upper(rc.FullName)),
		field("Postal Address", rc.Address),
		sectionBreak(),
		paragraph("This certification is being issued upon the request of the aforementioned individual for the purpose below:"),
		field("Purpose", purposeOrDefault(rc, TypeResidency)),
	}
}

func composeIndigency(rc *RenderContext) []Block {
	return []Block{
		paragraph("This is to certify that the below indicated person is a bona fide resident of this barangay:"),
		field("Requestor", upper(rc.FullName)),
		field("Postal Address", rc.Address),
		sectionBreak(),
		paragraph("I also certify that the above named person is known for his/her good character and without any derogatory record in this barangay."),
		paragraph("Further, this certifies that the above-mentioned person is also one of the INDIGENTS of the barangay."),
		paragraph("This certification is being issued upon the request of the aforementioned individual for the purpose below:"),
		field("Purpose", purposeOrDefault(rc, TypeIndigency)),
	}
}

func composeJobseeker(rc *RenderContext) []Block {
	return []Block{
		paragraph("This is to certify that the person (the requestor), whose information is indicated below, is known to me as a bona fide resident of this barangay. Further, I certify that he/she is qualified to avail of RA 11261 or the First-Time Jobseekers Act of 2019."),
		field("Requestor's Name", upper(rc.FullName)),
		field("Postal Address", rc.Address),
		field("Marital Status", rc.MaritalStatus),
		field("Citizenship", rc.Citizenship),
		sectionBreak(),
		paragraph("I further certify that the holder was informed of his/her rights including the duties and responsibilities accorded by RA 11261 through the Oath of Undertaking he/she has signed and executed in the presence of the Punong Barangay."),
	}
}

func composeGeneral(rc *RenderContext) []Block {
	return []Block{
		paragraph(fmt.Sprintf("This is to certify that %s, of legal age and with residence address at %s, is a bona fide resident of %s.", upper(rc.FullName), rc.Address, rc.BarangayLine())),
		paragraph(fmt.Sprintf("I further certify that their address at %s is not being rented nor being used for business purposes.", rc.Address)),
		paragraph(fmt.Sprintf("This certification is issued for %s.", purposeOrDefault(rc, TypeGeneral))),
	}
}

func composeGoodMoral(rc *RenderContext) []Block {
	return []Block{
		salutation("TO WHOM IT MAY CONCERN:"),
		paragraph(fmt.Sprintf("This is to certify that %s, of legal age, %s, is a bona fide resident of this Barangay with postal address at %s.", upper(rc.FullName), rc.Citizenship, rc.Address)),
		paragraph("He/She is known to me to be a person of good moral character and has never been involved in any trouble nor has any derogatory record in this Barangay."),
		paragraph(fmt.Sprintf("This certification is being issued upon the request of the above-named person for %s.", purposeOrDefault(rc, TypeGoodMoral))),
	}
}

func composeOath(rc *RenderContext) []Block {
	blocks := []Block{
		paragraph(fmt.Sprintf("I, %s, %s years of age, resident of %s, %s for %s years, availing the benefits of Republic Act 11261, otherwise known as the First Time Jobseekers Act 2019, do hereby declare, agree and undertake to abide and be bound by the following:",
			upper(rc.FullName), rc.Age, rc.Address, rc.BarangayLine(), rc.ResidencyYrs)),
	}
	for i, clause := range oathClauses {
		blocks = append(blocks, item(i+1, clause))
	}
	blocks = append(blocks,
		sectionBreak(),
		paragraph(fmt.Sprintf("Signed this %s, at %s.", rc.SignedDateLine(), rc.BarangayLine())),
		sectionBreak(),
		Block{Kind: KindSignature, Signatories: []Signatory{
			{Name: upper(rc.FullName), Title: "First Time Jobseeker"},
		}},
		paragraph("Witnessed by:"),
		Block{Kind: KindSignature, Signatories: []Signatory{
			{Name: upper(rc.CaptainName), Title: "Punong Barangay"},
			{Name: upper(rc.CoWitness), Title: "Barangay Kagawad"},
		}},
	)
	return blocks
}
