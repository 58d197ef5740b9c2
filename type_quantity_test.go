package taxform

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected Quantity
		err      bool
	}{
		{"99.31", Q(99.31), false},
		{"3.0000", Q(3.0), false},
		{"0.026", Q(0.026), false},
		// Swiss apostrophe thousands separator from the certificate
		{"2'255.5", Q(2255.5), false},
		// Comma thousands separator from the brokerage export
		{"1,175.99", Q(1175.99), false},
		{" 12 ", Q(12), false},
		{"-4.5", Q(-4.5), false},
		{"Award", Quantity{}, true},
		{"", Quantity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuantity(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseQuantity(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && !got.Equal(tt.expected) {
				t.Errorf("ParseQuantity(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestQuantityArithmetic(t *testing.T) {
	// The worked example from the documentation: vested plus purchased,
	// minus sold, leaves a negative (oversold) net position.
	owned := Q(99.31).Add(Q(25.047))
	if !owned.Equal(Q(124.357)) {
		t.Errorf("owned = %v, want 124.357", owned)
	}

	net := owned.Sub(Q(165.347))
	if !net.IsNegative() {
		t.Errorf("net = %v, want a negative value", net)
	}
	if got := net.Abs().StringFixed(3); got != "40.990" {
		t.Errorf("oversold = %q, want %q", got, "40.990")
	}
}

func TestQuantityStringFixed(t *testing.T) {
	tests := []struct {
		q        Quantity
		places   int32
		expected string
	}{
		{Q(99.31), 3, "99.310"},
		{Q(3.0), 4, "3.0000"},
		{Q(0.026), 4, "0.0260"},
		{Q(25.047), 3, "25.047"},
	}

	for _, tt := range tests {
		if got := tt.q.StringFixed(tt.places); got != tt.expected {
			t.Errorf("StringFixed(%d) = %q, want %q", tt.places, got, tt.expected)
		}
	}
}
