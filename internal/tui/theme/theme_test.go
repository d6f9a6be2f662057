package theme

import "testing"

func TestLoadAllAvailable(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) returned error: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("theme name = %q, want %q", th.Name, name)
		}
		if th.Bg == "" || th.Fg == "" || th.Accent == "" {
			t.Errorf("theme %q is missing core colors: %+v", name, th)
		}
	}
}

func TestLoadFallsBackToMocha(t *testing.T) {
	th, err := Load("no-such-theme")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("fallback theme = %q, want mocha", th.Name)
	}
}

func TestLoadEmptyName(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("default theme = %q, want mocha", th.Name)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Latte") {
		t.Error("IsAvailable should be case insensitive")
	}
	if IsAvailable("light") {
		t.Error("unknown theme reported available")
	}
}
