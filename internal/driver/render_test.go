package driver

import (
	"testing"

	"faithful/internal/render"
	"faithful/internal/testkit"
)

func TestRenderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // "" означает: ждём сам src
	}{
		{
			name: "plain declarations",
			src:  "fn main() {\n    let x = 42;\n    print(\"hi\");\n}",
		},
		{
			name: "deep indentation and blank lines",
			src:  "a\n\n\n        b (\n            c\n        )",
		},
		{
			name: "nested groups on one line",
			src:  "m[f({x: 1, y: [2, 3]})]",
		},
		{
			name: "comments are replaced by their whitespace footprint",
			src:  "a /*c*/ b",
			want: "a       b",
		},
		{
			name: "line comment disappears, next line keeps its column",
			src:  "a // tail\n  b",
			want: "a\n  b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := TokenizeBytes("rt.src", []byte(tt.src), 16)
			if res.Bag.HasErrors() {
				t.Fatalf("tokenize diagnostics: %v", res.Bag.Items())
			}
			if err := testkit.CheckStreamInvariants(res.Stream); err != nil {
				t.Fatalf("span invariant violated: %v", err)
			}

			got, err := render.Text(res.Stream)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			want := tt.want
			if want == "" {
				want = tt.src
			}
			if got != want {
				t.Errorf("render mismatch:\nwant %q\ngot  %q", want, got)
			}

			ok, msg := CheckRoundTrip(res)
			if !ok {
				t.Errorf("CheckRoundTrip failed: %s", msg)
			}
		})
	}
}

func TestCheckRoundTrip_Idempotent(t *testing.T) {
	res := TokenizeBytes("idem.src", []byte("x = f(y)\n    + 1"), 16)
	first, err := render.Text(res.Stream)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := render.Text(res.Stream)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
}
