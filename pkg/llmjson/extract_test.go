package llmjson

import "testing"

func TestExtractArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare array",
			input: `[1, 2, 3]`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "surrounded by prose",
			input: "Here is the result:\n[{\"a\": 1}]\nHope that helps!",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "markdown fence",
			input: "```json\n[\"x\"]\n```",
			want:  `["x"]`,
		},
		{
			name:  "nested arrays",
			input: `[[1], [2, [3]]]`,
			want:  `[[1], [2, [3]]]`,
		},
		{
			name:  "brackets inside strings ignored",
			input: `[{"keywords": ["price [usd]", "a]b"]}]`,
			want:  `[{"keywords": ["price [usd]", "a]b"]}]`,
		},
		{
			name:  "escaped quote inside string",
			input: `["say \"hi]\" there"]`,
			want:  `["say \"hi]\" there"]`,
		},
		{
			name:    "no array",
			input:   `{"a": 1}`,
			wantErr: true,
		},
		{
			name:    "unterminated",
			input:   `[1, 2`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractArray(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
