package hebrew

import "testing"

func TestValidateKeepsCleanHebrew(t *testing.T) {
	in := "שלום עולם\nבראשית ברא"
	if got := Validate(in); got != in {
		t.Fatalf("Validate(%q) = %q, want unchanged", in, got)
	}
}

func TestValidateDropsNonHebrewWords(t *testing.T) {
	got := Validate("שלום hello עולם 123")
	if got != "שלום עולם" {
		t.Fatalf("got %q, want %q", got, "שלום עולם")
	}
}

func TestValidateStripsNoiseCharacters(t *testing.T) {
	// OCR noise: currency sign and box-drawing glued onto a Hebrew word.
	got := Validate("₪שלום│")
	if got != "שלום" {
		t.Fatalf("got %q, want %q", got, "שלום")
	}
}

func TestValidateKeepsNiqqudAndPunctuation(t *testing.T) {
	in := "בְּרֵאשִׁית בָּרָא!"
	if got := Validate(in); got != in {
		t.Fatalf("got %q, want %q", got, in)
	}
}

func TestValidateDropsEmptyLines(t *testing.T) {
	got := Validate("שלום\n####\nעולם")
	if got != "שלום\nעולם" {
		t.Fatalf("got %q, want %q", got, "שלום\nעולם")
	}
}

func TestValidateIdempotent(t *testing.T) {
	inputs := []string{
		"שלום עולם",
		"noise שלום 42 │ עולם",
		"only latin words here",
		"",
		"בְּרֵאשִׁית\n\nבָּרָא אֱלֹהִים",
	}
	for _, in := range inputs {
		once := Validate(in)
		if twice := Validate(once); twice != once {
			t.Fatalf("Validate not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestContainsHebrew(t *testing.T) {
	if ContainsHebrew("hello") {
		t.Fatalf("latin text should not count as Hebrew")
	}
	if !ContainsHebrew("x שלום") {
		t.Fatalf("mixed text contains Hebrew")
	}
}
