package util

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Harihar Fort Trek", "harihar-fort-trek"},
		{"  A--B!!C  ", "a-b-c"},
		{"Katraj to Sinhagad", "katraj-to-sinhagad"},
		{"Valley of Flowers Trek", "valley-of-flowers-trek"},
		{"---", ""},
		{"", ""},
		{"Trek 2026!", "trek-2026"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Harihar Fort Trek", "  A--B!!C  ", "already-a-slug", "ॐ Trimbakeshwar Visit"}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestValidSlug(t *testing.T) {
	if !ValidSlug("harihar-fort-trek") {
		t.Fatalf("expected valid slug")
	}
	if ValidSlug("Harihar Fort") {
		t.Fatalf("expected invalid slug for raw name")
	}
	if ValidSlug("") {
		t.Fatalf("expected empty slug to be invalid")
	}
}
