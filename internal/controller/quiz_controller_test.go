package controller

import (
	"encoding/json"
	"testing"
)

func TestDecodeAnswers(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]string
		wantErr bool
	}{
		{name: "object", raw: `{"1":"A","2":"b"}`, want: map[string]string{"1": "A", "2": "b"}},
		{name: "encoded string", raw: `"{\"1\":\"C\",\"2\":\"D\"}"`, want: map[string]string{"1": "C", "2": "D"}},
		{name: "null", raw: `null`, want: map[string]string{}},
		{name: "empty", raw: ``, want: map[string]string{}},
		{name: "array", raw: `["A","B"]`, wantErr: true},
		{name: "bad encoded string", raw: `"not json"`, wantErr: true},
		{name: "numeric letters", raw: `{"1":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAnswers(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("answers[%s] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
