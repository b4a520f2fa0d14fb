package cleaner

import "testing"

func TestCleanGeneratedAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"comma", "cat, animal", "cat"},
		{"no comma", "dog", "dog"},
		{"surrounding spaces", "  dog  ", "dog"},
		{"leading comma", ", tail", ""},
		{"several commas", "বিড়াল, কুকুর, গরু", "বিড়াল"},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanGeneratedAnswer(tt.input); got != tt.want {
				t.Errorf("CleanGeneratedAnswer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTranslatedText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"article and copula", "The cat is an animal", "cat"},
		{"plain word", "Dog", "dog"},
		{"indefinite article", "an apple", "apple"},
		// The copula rule runs first, so "it is ..." keeps the pronoun.
		{"it is clause", "It is raining", "it"},
		{"this was clause", "This was fun", "this"},
		{"that is clause", "that is correct", "that"},
		{"trailing punctuation", "house.", "house"},
		{"comma", "river, stream", "river"},
		{"semicolon", "tree; plant", "tree"},
		{"conjunction and", "bread and butter", "bread"},
		{"conjunction or", "tea or coffee", "tea"},
		{"plural copula", "Birds are flying", "birds"},
		{"surrounding spaces", "   Moon  ", "moon"},
		{"article without word", "the", "the"},
		{"only punctuation", "...", ""},
		{"were clause", "they were here", "they"},
		{"no-break spaces", "The\u00a0cat\u00a0is an animal", "cat"},
		{"vertical tab", "cat\vis big", "cat"},
		{"no-break space conjunction", "salt\u00a0and pepper", "salt"},
		{"ideographic space article", "a\u3000dog", "dog"},
		{"next line copula", "birds\u0085are flying", "birds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTranslatedText(tt.input); got != tt.want {
				t.Errorf("CleanTranslatedText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRulesOrder(t *testing.T) {
	want := []string{
		"leading article",
		"trailing copula",
		"leading it is",
		"leading this is",
		"leading that is",
	}

	got := Rules()
	if len(got) != len(want) {
		t.Fatalf("Rules() returned %d rules, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("rule %d = %q, want %q", i, got[i].Name, name)
		}
	}

	// Mutating the returned slice must not affect the package rules.
	got[0] = Rule{Name: "changed"}
	if Rules()[0].Name != "leading article" {
		t.Error("Rules() exposed the internal slice")
	}
}
