package validation

import "testing"

func TestClassifyIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a@b.com", IdentifierEmail},
		{"nguyen.van.a@example.com.vn", IdentifierEmail},
		{"0912345678", IdentifierPhone},
		{"+84912345678", IdentifierPhone},
		{"0212345678", IdentifierInvalid}, // landline prefix
		{"091234567", IdentifierInvalid},  // too short
		{"not-an-identifier", IdentifierInvalid},
		{"", IdentifierInvalid},
	}

	for _, tt := range tests {
		if got := ClassifyIdentifier(tt.in); got != tt.want {
			t.Errorf("ClassifyIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveVietnameseTones(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sơn Phương Nam", "Son Phuong Nam"},
		{"đèn điện", "den dien"},
		{"ĐÀ NẴNG", "DA NANG"},
		{"plain ascii", "plain ascii"},
	}

	for _, tt := range tests {
		if got := RemoveVietnameseTones(tt.in); got != tt.want {
			t.Errorf("RemoveVietnameseTones(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sơn Phương Nam", "son-phuong-nam"},
		{"Đèn LED 50W", "den-led-50w"},
		{"  spaced   out  ", "spaced-out"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
