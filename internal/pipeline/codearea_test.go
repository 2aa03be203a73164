package pipeline

import "testing"

func TestCodeArea_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class string
		code  string
		want  string
	}{
		{
			name: "trims and sizes",
			code: "\n  a := 1\nfmt.Println(a)\n\n",
			want: `<textarea class="codearea" rows="2" cols="15" readonly>a := 1` + "\n" + `fmt.Println(a)</textarea>`,
		},
		{
			name: "empty code",
			code: "   ",
			want: `<textarea class="codearea" rows="1" cols="1" readonly></textarea>`,
		},
		{
			name: "wide runes count two columns",
			code: "日本",
			want: `<textarea class="codearea" rows="1" cols="5" readonly>日本</textarea>`,
		},
		{
			name: "tab counts one column",
			code: "a\tb",
			want: `<textarea class="codearea" rows="1" cols="4" readonly>a` + "\t" + `b</textarea>`,
		},
		{
			name:  "custom class",
			class: "listing",
			code:  "x",
			want:  `<textarea class="listing" rows="1" cols="2" readonly>x</textarea>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CodeArea{Class: tt.class}.Render(tt.code)
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
