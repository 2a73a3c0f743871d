package source

import (
	"reflect"
	"testing"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter rune
		want      [][]string
	}{
		{
			name:  "plain rows",
			input: "a,b,c\n1,2,3\n",
			want:  [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:  "quoted field with delimiter",
			input: "id,name\n1,\"Shirt, Oxford\"\n",
			want:  [][]string{{"id", "name"}, {"1", "Shirt, Oxford"}},
		},
		{
			name:  "escaped quote",
			input: "1,\"say \"\"hi\"\"\"\n",
			want:  [][]string{{"1", `say "hi"`}},
		},
		{
			name:  "crlf endings",
			input: "a,b\r\n1,2\r\n",
			want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:  "no trailing newline",
			input: "a,b\n1,2",
			want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:  "quoted field spanning lines",
			input: "1,\"two\nlines\"\n",
			want:  [][]string{{"1", "two\nlines"}},
		},
		{
			name:      "semicolon delimiter",
			input:     "a;b\n1;2\n",
			delimiter: ';',
			want:      [][]string{{"a", "b"}, {"1", "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCSV(tt.input, tt.delimiter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseCSV() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeCharset(t *testing.T) {
	// "café" in Latin-1 uses a single 0xE9 byte for é.
	latin1 := []byte{'c', 'a', 'f', 0xE9}

	got, err := decodeCharset(latin1, "latin-1")
	if err != nil {
		t.Fatalf("decodeCharset() error = %v", err)
	}

	if got != "café" {
		t.Errorf("decodeCharset() = %q, want %q", got, "café")
	}

	if _, err := decodeCharset(latin1, "ebcdic"); err == nil {
		t.Error("decodeCharset() expected error for unsupported charset")
	}

	passthrough, err := decodeCharset([]byte("plain"), "")
	if err != nil || passthrough != "plain" {
		t.Errorf("decodeCharset() = %q, %v", passthrough, err)
	}
}

func TestParsePriceText(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		currency     string
		wantAmount   float64
		wantNil      bool
		wantCurrency string
	}{
		{name: "plain amount", value: "19.99", wantAmount: 19.99},
		{name: "inline currency", value: "19.99 USD", wantAmount: 19.99, wantCurrency: "USD"},
		{name: "column wins", value: "19.99 USD", currency: "EUR", wantAmount: 19.99, wantCurrency: "EUR"},
		{name: "empty", value: "", wantNil: true},
		{name: "not a number", value: "free", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, currency := parsePriceText(tt.value, tt.currency)

			if tt.wantNil {
				if amount != nil {
					t.Fatalf("amount = %v, want nil", *amount)
				}

				return
			}

			if amount == nil || *amount != tt.wantAmount {
				t.Errorf("amount = %v, want %v", amount, tt.wantAmount)
			}

			if currency != tt.wantCurrency {
				t.Errorf("currency = %q, want %q", currency, tt.wantCurrency)
			}
		})
	}
}

func TestSplitMultiValue(t *testing.T) {
	if got := splitMultiValue("red|blue| green "); !reflect.DeepEqual(got, []string{"red", "blue", "green"}) {
		t.Errorf("splitMultiValue() = %v", got)
	}

	if got := splitMultiValue("S,M,L"); !reflect.DeepEqual(got, []string{"S", "M", "L"}) {
		t.Errorf("splitMultiValue() = %v", got)
	}

	if got := splitMultiValue("  "); got != nil {
		t.Errorf("splitMultiValue() = %v, want nil", got)
	}
}

func TestParseBoolText(t *testing.T) {
	for _, v := range []string{"true", "YES", "1"} {
		if got := parseBoolText(v); got == nil || !*got {
			t.Errorf("parseBoolText(%q) = %v, want true", v, got)
		}
	}

	for _, v := range []string{"false", "No", "0"} {
		if got := parseBoolText(v); got == nil || *got {
			t.Errorf("parseBoolText(%q) = %v, want false", v, got)
		}
	}

	if got := parseBoolText("maybe"); got != nil {
		t.Errorf("parseBoolText(maybe) = %v, want nil", got)
	}
}
