// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Disease is one entry of a triage differential.
type Disease struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
}

// Analysis is the normalized symptom triage result returned to clients.
type Analysis struct {
	HealthState      string    `json:"healthState"`
	PossibleDiseases []Disease `json:"possibleDiseases"`
	Remedies         []string  `json:"remedies"`
	OTCMedicines     []string  `json:"otcMedicines"`
	UrgentCare       string    `json:"urgentCare"`
	LifestyleAdvice  []string  `json:"lifestyleAdvice"`
	Disclaimer       string    `json:"disclaimer"`
}

// rawAnalysis accepts the model's output in either the instructed short
// key style or the spelled-out variants models sometimes drift into.
type rawAnalysis struct {
	HealthStateSnake string       `json:"health_state"`
	HealthState      string       `json:"healthState"`
	Diseases         []rawDisease `json:"diseases"`
	PossibleDiseases []rawDisease `json:"possibleDiseases"`
	Remedies         []string     `json:"remedies"`
	OTC              []string     `json:"otc"`
	OTCMedicines     []string     `json:"otcMedicines"`
	Urgent           string       `json:"urgent"`
	UrgentCare       string       `json:"urgentCare"`
	Lifestyle        []string     `json:"lifestyle"`
	LifestyleAdvice  []string     `json:"lifestyleAdvice"`
	Disclaimer       string       `json:"disclaimer"`
}

type rawDisease struct {
	Name        string `json:"name"`
	Probability string `json:"probability"`
	Confidence  string `json:"confidence"`
	Reason      string `json:"reason"`
}

// ParseAnalysis decodes and normalizes the model's triage answer. The
// model is told to emit bare JSON; anything else is a hard error.
func ParseAnalysis(text string) (*Analysis, error) {
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("ai: invalid JSON in analysis response: %w", err)
	}

	diseases := raw.Diseases
	if len(diseases) == 0 {
		diseases = raw.PossibleDiseases
	}

	a := &Analysis{
		HealthState:      firstOf(raw.HealthStateSnake, raw.HealthState),
		PossibleDiseases: []Disease{},
		Remedies:         orEmptyStrings(raw.Remedies),
		OTCMedicines:     orEmptyStrings(firstOfSlices(raw.OTC, raw.OTCMedicines)),
		UrgentCare:       firstOf(raw.Urgent, raw.UrgentCare),
		LifestyleAdvice:  orEmptyStrings(firstOfSlices(raw.Lifestyle, raw.LifestyleAdvice)),
		Disclaimer:       raw.Disclaimer,
	}
	for _, d := range diseases {
		a.PossibleDiseases = append(a.PossibleDiseases, Disease{
			Name:       d.Name,
			Confidence: firstOf(d.Probability, d.Confidence),
			Reason:     d.Reason,
		})
	}
	return a, nil
}

func firstOf(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstOfSlices(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
