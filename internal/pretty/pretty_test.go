package pretty

import (
	"testing"

	"biosci/pkg/api"
)

var global = api.AlignmentV1{
	AlignedA: "ACGTACGT", AlignedB: "ACGT-CGT",
	Score: 6, Mode: "global", Alphabet: "dna",
	StartA: 0, EndA: 8, StartB: 0, EndB: 7,
	Identity: 0.875, Gaps: 1,
}

func TestRenderAlignment_SingleBlock(t *testing.T) {
	got := RenderAlignment(global)
	want := "" +
		"# global score=6 identity=87.5% gaps=1\n" +
		"# A 1 ACGTACGT 8\n" +
		"#     |||| |||\n" +
		"# B 1 ACGT-CGT 7\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderAlignment_Blocks(t *testing.T) {
	got := RenderAlignmentWithOptions(global, Options{Width: 4})
	want := "" +
		"# global score=6 identity=87.5% gaps=1\n" +
		"# A 1 ACGT 4\n" +
		"#     ||||\n" +
		"# B 1 ACGT 4\n" +
		"#\n" +
		"# A 5 ACGT 8\n" +
		"#      |||\n" +
		"# B 5 -CGT 7\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderAlignment_LocalOffsetsAndPartial(t *testing.T) {
	a := api.AlignmentV1{
		AlignedA: "CGTN", AlignedB: "CGTA",
		Score: 3, Mode: "local", Alphabet: "dna",
		StartA: 8, EndA: 12, StartB: 1, EndB: 5,
		Identity: 0.75,
	}
	got := RenderAlignment(a)
	want := "" +
		"# local score=3 identity=75.0% gaps=0\n" +
		"# A  9 CGTN 12\n" +
		"#      |||¦\n" +
		"# B  2 CGTA 5\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderAlignment_Empty(t *testing.T) {
	got := RenderAlignment(api.AlignmentV1{Mode: "local"})
	want := "# local score=0 identity=0.0% gaps=0\n# (empty alignment)\n#\n"
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ACGTACGT", 3, "ACG\nTAC\nGT\n"},
		{"ACGTAC", 3, "ACG\nTAC\n"},
		{"ACG", 60, "ACG\n"},
		{"ACGT", 0, "ACGT\n"},
		{"", 5, "\n"},
	}
	for _, tc := range tests {
		if got := Wrap(tc.in, tc.width); got != tc.want {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.Width != 60 || d.ExactGlyph != "|" || d.PartialGlyph != "¦" || d.MismatchGlyph != " " {
		t.Fatalf("DefaultOptions visual defaults changed: %+v", d)
	}
}
