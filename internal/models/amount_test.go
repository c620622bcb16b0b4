package models

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `123.45`, 123.45},
		{"negative", `-10`, -10},
		{"numeric string", `"1200.50"`, 1200.50},
		{"empty string", `""`, 0},
		{"text", `"not a number"`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"object", `{"v":1}`, 0},
		{"array", `[1,2]`, 0},
		{"infinity string", `"Inf"`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if a.Float64() != tc.want {
				t.Errorf("got %v, want %v", a.Float64(), tc.want)
			}
		})
	}
}

func TestAmount_UnmarshalInsideStruct(t *testing.T) {
	var asset Asset
	blob := `{"id":"x","type":"liquid","name":"Cash","value":"oops","currency":"TRY"}`
	if err := json.Unmarshal([]byte(blob), &asset); err != nil {
		t.Fatalf("unmarshal asset: %v", err)
	}
	if asset.Value.Float64() != 0 {
		t.Errorf("malformed value should coerce to 0, got %v", asset.Value.Float64())
	}
	if asset.Name != "Cash" {
		t.Errorf("sibling fields should survive, got %q", asset.Name)
	}
}

func TestAmount_MarshalRoundTrip(t *testing.T) {
	in := Amount(42.5)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Amount
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %v != %v", out, in)
	}
}
