package extract

import (
	"encoding/json"
	"testing"
)

func TestClassifyDocumentType(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		filename string
		want     string
	}{
		{"passport in text", "REPUBLIC OF EXAMPLE PASSPORT", "scan.png", DocTypePassport},
		{"passport in filename only", "unreadable glyphs", "passport-front.jpg", DocTypePassport},
		{"passport beats national id", "passport national id", "x.png", DocTypePassport},
		{"national id", "NATIONAL ID CARD", "scan.png", DocTypeNationalID},
		{"driver license", "DRIVER LICENSE STATE OF EXAMPLE", "scan.png", DocTypeDriversLicense},
		{"national alone is not enough", "national census form", "scan.png", DocTypeUnknown},
		{"no signal", "some receipt text", "scan.png", DocTypeUnknown},
		// The conjunction checks read the text only; a national-id filename
		// does not classify on its own.
		{"national id filename ignored", "unreadable glyphs", "national-id.png", DocTypeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := FromText(tc.text, tc.filename)
			if rec.DocumentType != tc.want {
				t.Fatalf("documentType = %q, want %q", rec.DocumentType, tc.want)
			}
		})
	}
}

func TestConfidenceIsAlwaysFixed(t *testing.T) {
	for _, text := range []string{"", "PASSPORT No. A1 Name: Jane Doe", "nothing matches here"} {
		if rec := FromText(text, "scan.jpg"); rec.Confidence != 0.85 {
			t.Fatalf("confidence = %v for %q, want 0.85", rec.Confidence, text)
		}
	}
}

func TestIDNumberPatternPriority(t *testing.T) {
	// Generic label and passport label both present: the generic pattern is
	// tried first and wins; the passport-specific match is never attempted.
	rec := FromText("Card No. A123 Passport Z999", "scan.png")
	if rec.IDNumber != "A123" {
		t.Fatalf("idNumber = %q, want A123", rec.IDNumber)
	}

	// Only the passport label matches.
	rec = FromText("passport: P999111", "scan.png")
	if rec.IDNumber != "P999111" {
		t.Fatalf("idNumber = %q, want P999111", rec.IDNumber)
	}

	// Serial label is the last resort.
	rec = FromText("Serial# 55X", "scan.png")
	if rec.IDNumber != "55X" {
		t.Fatalf("idNumber = %q, want 55X", rec.IDNumber)
	}

	rec = FromText("no identifiers here", "scan.png")
	if rec.IDNumber != "" {
		t.Fatalf("idNumber = %q, want empty", rec.IDNumber)
	}
}

func TestNameSplitting(t *testing.T) {
	cases := []struct {
		text                string
		first, middle, last string
	}{
		{"Name: John Michael Smith", "John", "Michael", "Smith"},
		{"Name: Jane Doe", "Jane", "", "Doe"},
		{"Name: Cher", "Cher", "", ""},
		{"Name: Anna Maria Luisa Rossi", "Anna", "Maria", "Luisa Rossi"},
		{"nothing to split here", "", "", ""},
	}
	for _, tc := range cases {
		rec := FromText(tc.text, "scan.png")
		if rec.FirstName != tc.first || rec.MiddleName != tc.middle || rec.LastName != tc.last {
			t.Fatalf("FromText(%q) name = %q/%q/%q, want %q/%q/%q",
				tc.text, rec.FirstName, rec.MiddleName, rec.LastName, tc.first, tc.middle, tc.last)
		}
	}
}

func TestDatesArePassedThroughVerbatim(t *testing.T) {
	rec := FromText("DOB: 5-3-99", "scan.png")
	if rec.DateOfBirth != "5-3-99" {
		t.Fatalf("dateOfBirth = %q, want 5-3-99", rec.DateOfBirth)
	}

	rec = FromText("Born: 01.02.2003", "scan.png")
	if rec.DateOfBirth != "01.02.2003" {
		t.Fatalf("dateOfBirth = %q, want 01.02.2003", rec.DateOfBirth)
	}

	// No calendrical validation at all.
	rec = FromText("Date of Birth: 99/99/9999", "scan.png")
	if rec.DateOfBirth != "99/99/9999" {
		t.Fatalf("dateOfBirth = %q, want 99/99/9999", rec.DateOfBirth)
	}
}

func TestSexNormalization(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Sex: M", "Male"},
		{"Sex: F", "Female"},
		{"sex: male", "Male"},
		{"Gender: female", "Female"},
		{"GENDER: MALE", "Male"},
		{"Sex: X", ""},
		{"no label", ""},
	}
	for _, tc := range cases {
		if rec := FromText(tc.text, "scan.png"); rec.Sex != tc.want {
			t.Fatalf("FromText(%q) sex = %q, want %q", tc.text, rec.Sex, tc.want)
		}
	}
}

func TestIssueAndExpiryAreIndependent(t *testing.T) {
	rec := FromText("Date of Issue: 01/01/2020", "scan.png")
	if rec.IssuedDate != "01/01/2020" || rec.ExpiryDate != "" {
		t.Fatalf("got issued=%q expiry=%q", rec.IssuedDate, rec.ExpiryDate)
	}

	rec = FromText("Valid Until: 31/12/2019", "scan.png")
	if rec.ExpiryDate != "31/12/2019" || rec.IssuedDate != "" {
		t.Fatalf("got issued=%q expiry=%q", rec.IssuedDate, rec.ExpiryDate)
	}

	// Expiry before issue is accepted; there is no cross-validation.
	rec = FromText("Issued: 01/01/2030\n1\nExpires: 01/01/2020", "scan.png")
	if rec.IssuedDate != "01/01/2030" || rec.ExpiryDate != "01/01/2020" {
		t.Fatalf("got issued=%q expiry=%q", rec.IssuedDate, rec.ExpiryDate)
	}
}

func TestAddressExtraction(t *testing.T) {
	rec := FromText("Address: 12 Harbor St. #4, Port City", "scan.png")
	if rec.Address != "12 Harbor St. #4, Port City" {
		t.Fatalf("address = %q", rec.Address)
	}
}

func TestFullDocument(t *testing.T) {
	text := "PASSPORT\n" +
		"Passport No. AB1234567\n" +
		"Name: Jane Ann Doe.\n" +
		"Nationality: Utopian.\n" +
		"Sex: F\n" +
		"DOB: 12/04/1990\n" +
		"Date of Issue: 01/01/2020\n" +
		"Date of Expiry: 01/01/2030\n" +
		"Address: 12 Harbor St. #4\n"

	rec := FromText(text, "upload.pdf")

	if rec.DocumentType != DocTypePassport {
		t.Fatalf("documentType = %q", rec.DocumentType)
	}
	if rec.Confidence != 0.85 {
		t.Fatalf("confidence = %v", rec.Confidence)
	}
	if rec.IDNumber != "AB1234567" {
		t.Fatalf("idNumber = %q", rec.IDNumber)
	}
	if rec.FirstName != "Jane" || rec.MiddleName != "Ann" || rec.LastName != "Doe" {
		t.Fatalf("name = %q/%q/%q", rec.FirstName, rec.MiddleName, rec.LastName)
	}
	if rec.Nationality != "Utopian" {
		t.Fatalf("nationality = %q", rec.Nationality)
	}
	if rec.Sex != "Female" {
		t.Fatalf("sex = %q", rec.Sex)
	}
	if rec.DateOfBirth != "12/04/1990" {
		t.Fatalf("dateOfBirth = %q", rec.DateOfBirth)
	}
	if rec.IssuedDate != "01/01/2020" || rec.ExpiryDate != "01/01/2030" {
		t.Fatalf("issued=%q expiry=%q", rec.IssuedDate, rec.ExpiryDate)
	}
	if rec.Address != "12 Harbor St. #4" {
		t.Fatalf("address = %q", rec.Address)
	}
}

func TestJSONContainsExactlyMatchedKeys(t *testing.T) {
	rec := FromText("Name: Jane Doe", "scan.png")

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]bool{
		"documentType": true,
		"confidence":   true,
		"firstName":    true,
		"lastName":     true,
	}
	for key := range want {
		if _, ok := got[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	for key := range got {
		if !want[key] {
			t.Errorf("unexpected key %q", key)
		}
	}
}

func TestJSONForEmptyText(t *testing.T) {
	data, err := json.Marshal(FromText("", "scan.png"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected only documentType and confidence, got %v", got)
	}
	if got["documentType"] != "Unknown" {
		t.Fatalf("documentType = %v", got["documentType"])
	}
	if got["confidence"] != 0.85 {
		t.Fatalf("confidence = %v", got["confidence"])
	}
}
