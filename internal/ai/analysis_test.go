// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import "testing"

func TestParseAnalysisShortKeys(t *testing.T) {
	text := `{
		"health_state": "mild illness likely",
		"diseases": [
			{"name": "Common cold", "probability": "70%", "reason": "runny nose, low fever"}
		],
		"remedies": ["rest", "fluids"],
		"otc": ["paracetamol"],
		"urgent": "See a doctor if fever exceeds 39C",
		"lifestyle": ["sleep well"],
		"disclaimer": "This is not medical advice."
	}`

	a, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if a.HealthState != "mild illness likely" {
		t.Errorf("healthState: got %q", a.HealthState)
	}
	if len(a.PossibleDiseases) != 1 {
		t.Fatalf("diseases: got %v", a.PossibleDiseases)
	}
	if a.PossibleDiseases[0].Confidence != "70%" {
		t.Errorf("confidence: got %q", a.PossibleDiseases[0].Confidence)
	}
	if len(a.OTCMedicines) != 1 || a.OTCMedicines[0] != "paracetamol" {
		t.Errorf("otc: got %v", a.OTCMedicines)
	}
	if a.UrgentCare == "" {
		t.Error("urgentCare not mapped")
	}
}

func TestParseAnalysisLongKeys(t *testing.T) {
	text := `{
		"healthState": "stable",
		"possibleDiseases": [{"name": "Allergy", "confidence": "55%", "reason": "seasonal"}],
		"otcMedicines": ["antihistamine"],
		"urgentCare": "none",
		"lifestyleAdvice": ["avoid pollen"]
	}`

	a, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if a.HealthState != "stable" {
		t.Errorf("healthState: got %q", a.HealthState)
	}
	if len(a.PossibleDiseases) != 1 || a.PossibleDiseases[0].Confidence != "55%" {
		t.Errorf("diseases: got %v", a.PossibleDiseases)
	}
	if len(a.LifestyleAdvice) != 1 {
		t.Errorf("lifestyle: got %v", a.LifestyleAdvice)
	}
	// Missing list fields come back as empty slices, not null.
	if a.Remedies == nil {
		t.Error("remedies must be an empty slice")
	}
}

func TestParseAnalysisInvalidJSON(t *testing.T) {
	if _, err := ParseAnalysis("Sure! Here is the analysis: ..."); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}
