package extract

import (
	"regexp"
	"strings"
)

// Record is the structured result of field extraction. DocumentType and
// Confidence are always set; every other field appears in the JSON output only
// when its pattern matched.
type Record struct {
	DocumentType string  `json:"documentType"`
	Confidence   float64 `json:"confidence"`
	IDNumber     string  `json:"idNumber,omitempty"`
	FirstName    string  `json:"firstName,omitempty"`
	MiddleName   string  `json:"middleName,omitempty"`
	LastName     string  `json:"lastName,omitempty"`
	DateOfBirth  string  `json:"dateOfBirth,omitempty"`
	Sex          string  `json:"sex,omitempty"`
	Nationality  string  `json:"nationality,omitempty"`
	IssuedDate   string  `json:"issuedDate,omitempty"`
	ExpiryDate   string  `json:"expiryDate,omitempty"`
	Address      string  `json:"address,omitempty"`
}

// Document type labels.
const (
	DocTypePassport       = "Passport"
	DocTypeNationalID     = "National ID"
	DocTypeDriversLicense = "Driver's License"
	DocTypeUnknown        = "Unknown"
)

// baseConfidence is a fixed placeholder, not a measured score.
const baseConfidence = 0.85

// Pattern lists are ordered: for each field the first matching pattern wins
// and later ones are not tried, even if a later pattern would match more.
var (
	idNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:ID|id|No|NO|Number)[.:#\s]*([A-Z0-9]+)`),
		regexp.MustCompile(`(?:Passport|passport)[.:#\s]*([A-Z0-9]+)`),
		regexp.MustCompile(`(?:Serial|serial)[.:#\s]*([A-Z0-9]+)`),
	}

	namePattern = regexp.MustCompile(`(?:Name|name)[.:#\s]*([A-Za-z\s]+)`)

	dateOfBirthPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:Date of Birth|DOB|Birth Date)[.:#\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
		regexp.MustCompile(`(?:Born|born)[.:#\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
	}

	sexPattern         = regexp.MustCompile(`(?i)(?:Sex|Gender)[.:#\s]*([MF]|Male|Female)`)
	nationalityPattern = regexp.MustCompile(`(?:Nationality|nationality)[.:#\s]*([A-Za-z\s]+)`)
	issuedPattern      = regexp.MustCompile(`(?i)(?:Date of Issue|Issued|Issue Date)[.:#\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	expiryPattern      = regexp.MustCompile(`(?i)(?:Date of Expiry|Expiry|Expiry Date|Expires|Valid Until)[.:#\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	addressPattern     = regexp.MustCompile(`(?:Address|address)[.:#\s]*([A-Za-z0-9\s.,#-]+)`)
)

// FromText derives a Record from recognized text. Pure best-effort pattern
// matching: dates are passed through verbatim with no calendrical validation,
// and nothing is cross-checked between fields.
func FromText(text, filename string) Record {
	rec := Record{
		DocumentType: classify(text, filename),
		Confidence:   baseConfidence,
	}

	for _, p := range idNumberPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			rec.IDNumber = m[1]
			break
		}
	}

	if m := namePattern.FindStringSubmatch(text); m != nil {
		parts := strings.Fields(m[1])
		switch {
		case len(parts) >= 3:
			rec.FirstName = parts[0]
			rec.MiddleName = parts[1]
			rec.LastName = strings.Join(parts[2:], " ")
		case len(parts) == 2:
			rec.FirstName = parts[0]
			rec.LastName = parts[1]
		case len(parts) == 1:
			rec.FirstName = parts[0]
		}
	}

	for _, p := range dateOfBirthPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			rec.DateOfBirth = m[1]
			break
		}
	}

	if m := sexPattern.FindStringSubmatch(text); m != nil {
		switch strings.ToUpper(m[1]) {
		case "M", "MALE":
			rec.Sex = "Male"
		case "F", "FEMALE":
			rec.Sex = "Female"
		}
	}

	if m := nationalityPattern.FindStringSubmatch(text); m != nil {
		rec.Nationality = strings.TrimSpace(m[1])
	}

	if m := issuedPattern.FindStringSubmatch(text); m != nil {
		rec.IssuedDate = m[1]
	}
	if m := expiryPattern.FindStringSubmatch(text); m != nil {
		rec.ExpiryDate = m[1]
	}

	if m := addressPattern.FindStringSubmatch(text); m != nil {
		rec.Address = strings.TrimSpace(m[1])
	}

	return rec
}

// classify picks the document type with a fixed priority: passport beats
// national id beats driver's license. Only the passport check also considers
// the filename.
func classify(text, filename string) string {
	lowerText := strings.ToLower(text)
	lowerName := strings.ToLower(filename)
	switch {
	case strings.Contains(lowerText, "passport") || strings.Contains(lowerName, "passport"):
		return DocTypePassport
	case strings.Contains(lowerText, "national") && strings.Contains(lowerText, "id"):
		return DocTypeNationalID
	case strings.Contains(lowerText, "driver") && strings.Contains(lowerText, "license"):
		return DocTypeDriversLicense
	default:
		return DocTypeUnknown
	}
}
