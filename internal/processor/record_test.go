package processor

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseRecord_KeepsOrder(t *testing.T) {
	record, err := ParseRecord([]byte(`{"Id": 7, "Question": "q?", "Generated": "cat", "Answer": ["cat"]}`))
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	want := []string{"Id", "Question", "Generated", "Answer"}
	if got := record.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	record.Set("CleanedAnswer", json.RawMessage(`"cat"`))
	record.Set("Id", json.RawMessage(`8`))

	got, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"Id":8,"Question":"q?","Generated":"cat","Answer":["cat"],"CleanedAnswer":"cat"}`
	if string(got) != expected {
		t.Errorf("Marshal() = %s, want %s", got, expected)
	}
}

func TestParseRecord_DuplicateKeys(t *testing.T) {
	record, err := ParseRecord([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if got := record.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", got)
	}
	if value, _ := record.Get("a"); string(value) != "3" {
		t.Errorf("Get(a) = %s, want the last value 3", value)
	}
}

func TestParseRecord_Nested(t *testing.T) {
	line := `{"Meta": {"z": [1, 2], "a": "<b>&</b>"}, "Generated": "বিড়াল"}`
	record, err := ParseRecord([]byte(line))
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	got, err := record.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	expected := `{"Meta":{"z":[1,2],"a":"<b>&</b>"},"Generated":"বিড়াল"}`
	if string(got) != expected {
		t.Errorf("MarshalJSON() = %s, want %s", got, expected)
	}
}

func TestParseRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ``},
		{"array", `["cat"]`},
		{"null", `null`},
		{"string", `"cat"`},
		{"unterminated", `{"Generated": "second"`},
		{"missing value", `{"Generated":}`},
		{"trailing data", `{"Generated": "a"} {"Generated": "b"}`},
		{"trailing garbage", `{"Generated": "a"} x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecord([]byte(tt.line)); err == nil {
				t.Errorf("ParseRecord(%q) should fail", tt.line)
			}
		})
	}
}
