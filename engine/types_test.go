package engine

import (
	"encoding/json"
	"testing"
)

func TestGrindSetting_MarshalStepped(t *testing.T) {
	data, err := json.Marshal(GrindSetting{Value: 4})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "4" {
		t.Errorf("marshal = %s, want bare number 4", data)
	}
}

func TestGrindSetting_MarshalStepless(t *testing.T) {
	data, err := json.Marshal(GrindSetting{Stepless: true, Min: 2.5, Max: 3.5})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"min":2.5,"max":3.5}` {
		t.Errorf("marshal = %s, want {\"min\":2.5,\"max\":3.5}", data)
	}
}

func TestGrindSetting_UnmarshalRoundTrip(t *testing.T) {
	var stepped GrindSetting
	if err := json.Unmarshal([]byte("7"), &stepped); err != nil {
		t.Fatal(err)
	}
	if stepped.Stepless || stepped.Value != 7 {
		t.Errorf("unmarshal 7 = %+v", stepped)
	}

	var stepless GrindSetting
	if err := json.Unmarshal([]byte(`{"min":1.5,"max":2.5}`), &stepless); err != nil {
		t.Fatal(err)
	}
	if !stepless.Stepless || stepless.Min != 1.5 || stepless.Max != 2.5 {
		t.Errorf("unmarshal range = %+v", stepless)
	}
}

func TestGrindSetting_UnmarshalRejectsMalformedObjects(t *testing.T) {
	for _, raw := range []string{`{}`, `{"min":1.5}`, `{"max":2.5}`, `"four"`} {
		var g GrindSetting
		if err := json.Unmarshal([]byte(raw), &g); err == nil {
			t.Errorf("unmarshal %s succeeded, want error", raw)
		}
	}
}
