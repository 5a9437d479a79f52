package pkg

import (
	"os"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "calcsheet" {
		t.Errorf("Expected Name to be %q, got %q", "calcsheet", Name)
	}
}

func TestDescription(t *testing.T) {
	if Description == "" {
		t.Error("Expected non-empty Description")
	}
}

func TestVersion(t *testing.T) {
	// Tests run in the package directory, next to the embedded file.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}

	if strings.ContainsAny(Version, " \t\r\n") {
		t.Errorf("Version %q contains whitespace", Version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("Expected Author to have at least one entry")
	}

	for i, a := range Author {
		if a.Name == "" || !strings.Contains(a.Email, "@") {
			t.Errorf("Author[%d] = %+v is incomplete", i, a)
		}
	}
}
