package highlight

import (
	"strings"
	"testing"
)

// classesString renders a class slice into a compact signature like
// "keyword1:2 normal:3" for readable test expectations.
func classesString(classes []Class) string {
	if len(classes) == 0 {
		return ""
	}
	var b strings.Builder
	run := classes[0]
	count := 1
	flush := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(run.String())
		b.WriteByte(':')
		b.WriteRune(rune('0' + count/10))
		b.WriteRune(rune('0' + count%10))
	}
	for _, c := range classes[1:] {
		if c == run {
			count++
			continue
		}
		flush()
		run, count = c, 1
	}
	flush()
	return b.String()
}

func TestScanKeywords(t *testing.T) {
	profile := CProfile()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tier1 at boundary", "if(x)", "keyword1:02 normal:03"},
		{"tier2 at boundary", "int x;", "keyword2:03 normal:03"},
		{"mid identifier not matched", "xif(y)", "normal:06"},
		{"keyword at end of row", "return", "keyword1:06"},
		{"keyword prefix of identifier", "iffy", "normal:04"},
		{"two keywords", "if else", "keyword1:02 normal:01 keyword1:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes, ends := Scan([]byte(tt.input), false, profile)
			if ends {
				t.Error("row should not end in a comment")
			}
			if got := classesString(classes); got != tt.want {
				t.Errorf("Scan(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanNumbers(t *testing.T) {
	profile := CProfile()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "42", "number:02"},
		{"float", "3.14", "number:04"},
		{"second decimal point is error tail", "3.14.5", "number:04 error:02"},
		{"leading dot", ".5", "number:02"},
		{"hex", "0xFF", "number:04"},
		{"hex with invalid digit", "0x1G", "number:03 error:01"},
		{"octal", "0755", "number:04"},
		{"octal with invalid digit", "0758", "number:03 error:01"},
		{"digit inside identifier", "x42", "normal:03"},
		{"number after separator", "a+1", "normal:02 number:01"},
		{"trailing letters", "3x", "number:01 error:01"},
		{"number then separator", "7;", "number:01 normal:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes, _ := Scan([]byte(tt.input), false, profile)
			if got := classesString(classes); got != tt.want {
				t.Errorf("Scan(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanStrings(t *testing.T) {
	profile := CProfile()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quoted", `x = "hi";`, "normal:04 string:04 normal:01"},
		{"single quoted", "c = 'a';", "normal:04 string:03 normal:01"},
		{"escaped quote stays inside", `"a\"b"`, "string:06"},
		{"unterminated runs to end", `"open`, "string:05"},
		{"comment marker inside string", `"http://x"`, "string:10"},
		{"number inside string", `"42"`, "string:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes, _ := Scan([]byte(tt.input), false, profile)
			if got := classesString(classes); got != tt.want {
				t.Errorf("Scan(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanLineComments(t *testing.T) {
	profile := CProfile()

	classes, ends := Scan([]byte("x = 1; // note"), false, profile)
	if ends {
		t.Error("line comment must not open a block comment")
	}
	want := "normal:04 number:01 normal:02 comment:07"
	if got := classesString(classes); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestScanBlockComments(t *testing.T) {
	profile := CProfile()

	t.Run("opens and carries state", func(t *testing.T) {
		classes, ends := Scan([]byte("int x; /* open"), false, profile)
		if !ends {
			t.Error("row should end inside a block comment")
		}
		want := "keyword2:03 normal:04 block-comment:07"
		if got := classesString(classes); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("continues from previous row", func(t *testing.T) {
		classes, ends := Scan([]byte("inside */ int y;"), true, profile)
		if ends {
			t.Error("row should close the block comment")
		}
		want := "block-comment:09 normal:01 keyword2:03 normal:03"
		if got := classesString(classes); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("whole row inside", func(t *testing.T) {
		classes, ends := Scan([]byte("still inside"), true, profile)
		if !ends {
			t.Error("comment state should persist")
		}
		if got := classesString(classes); got != "block-comment:12" {
			t.Errorf("got %s", got)
		}
	})

	t.Run("line comment suppressed inside block", func(t *testing.T) {
		classes, ends := Scan([]byte("// not a line comment"), true, profile)
		if !ends {
			t.Error("comment state should persist")
		}
		if got := classesString(classes); got != "block-comment:21" {
			t.Errorf("got %s", got)
		}
	})

	t.Run("open and close on one row", func(t *testing.T) {
		_, ends := Scan([]byte("a /* c */ b"), false, profile)
		if ends {
			t.Error("closed comment should not carry state")
		}
	})
}

func TestScanSpecials(t *testing.T) {
	profile := CProfile()

	t.Run("include directive", func(t *testing.T) {
		classes, _ := Scan([]byte("#include <stdio.h>"), false, profile)
		want := "special:08 normal:01 special:09"
		if got := classesString(classes); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("whitespace after introducer", func(t *testing.T) {
		classes, _ := Scan([]byte("# define X 1"), false, profile)
		want := "special:01 normal:01 special:06 normal:01 special:01 normal:01 special:01"
		if got := classesString(classes); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("unknown directive ignored", func(t *testing.T) {
		classes, _ := Scan([]byte("#bogus"), false, profile)
		if got := classesString(classes); got != "normal:06" {
			t.Errorf("got %s", got)
		}
	})
}

func TestScanNilProfile(t *testing.T) {
	classes, ends := Scan([]byte(`if (x) { /* "42" */ }`), false, nil)
	if ends {
		t.Error("nil profile must not track comment state")
	}
	for i, c := range classes {
		if c != Normal {
			t.Fatalf("byte %d classified %s, want normal", i, c)
		}
	}
}

func TestScanEmptyRow(t *testing.T) {
	classes, ends := Scan(nil, true, CProfile())
	if len(classes) != 0 {
		t.Errorf("expected no classes, got %d", len(classes))
	}
	if !ends {
		t.Error("empty row must pass comment state through")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(",.()+-/*!?=~%<>[]{}:;&|^\"'\\ \t\x00") {
		if !IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("abzAZ09_@$`") {
		if IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = true, want false", c)
		}
	}
}
