// Package json persists generation results as versioned JSON documents.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/cycloid"
)

// envelope is the v1 wire format for a generation result.
type envelope struct {
	Version    int           `json:"version"`
	Params     paramsDTO     `json:"params"`
	OK         bool          `json:"ok"`
	Messages   []messageDTO  `json:"messages"`
	Equations  *equationsDTO `json:"equations,omitempty"`
	Sample     *sampleDTO    `json:"sample,omitempty"`
	Advisories []string      `json:"advisories,omitempty"`
}

type paramsDTO struct {
	Rp float64 `json:"r_p"`
	E  float64 `json:"e"`
	R  float64 `json:"r"`
	N  float64 `json:"n"`
}

type messageDTO struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

type equationsDTO struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// MarshalResult serializes a Result to JSON in v1 envelope format.
func MarshalResult(r cycloid.Result) ([]byte, error) {
	env := envelope{
		Version: 1,
		Params: paramsDTO{
			Rp: r.Candidate.Rp,
			E:  r.Candidate.E,
			R:  r.Candidate.R,
			N:  r.Candidate.N,
		},
		OK:         r.Validation.OK,
		Messages:   make([]messageDTO, len(r.Validation.Messages)),
		Advisories: r.Advisories(),
	}
	for i, m := range r.Validation.Messages {
		env.Messages[i] = messageDTO{Severity: string(m.Severity), Text: m.Text}
	}
	if r.Equations != nil {
		env.Equations = &equationsDTO{X: r.Equations.X, Y: r.Equations.Y}
	}
	if r.Sample != nil {
		s, err := marshalSample(*r.Sample)
		if err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		env.Sample = &s
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalResult deserializes a Result from JSON in v1 envelope format.
func UnmarshalResult(data []byte) (cycloid.Result, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return cycloid.Result{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return cycloid.Result{}, fmt.Errorf("envelope version %d: %w", env.Version, cycloid.ErrUnsupportedVersion)
	}
	res := cycloid.Result{
		Candidate: cycloid.Candidate{
			Rp: env.Params.Rp,
			E:  env.Params.E,
			R:  env.Params.R,
			N:  env.Params.N,
		},
		Validation: cycloid.Validation{OK: env.OK},
	}
	for i, dto := range env.Messages {
		sev, err := unmarshalSeverity(dto.Severity)
		if err != nil {
			return cycloid.Result{}, fmt.Errorf("message %d: %w", i, err)
		}
		res.Validation.Messages = append(res.Validation.Messages, cycloid.Message{Severity: sev, Text: dto.Text})
	}
	if env.Equations != nil {
		res.Equations = &cycloid.Equations{X: env.Equations.X, Y: env.Equations.Y}
	}
	if env.Sample != nil {
		s, err := unmarshalSample(*env.Sample)
		if err != nil {
			return cycloid.Result{}, fmt.Errorf("sample: %w", err)
		}
		res.Sample = &s
	}
	return res, nil
}

// Save writes a Result to a JSON file, creating parent directories as needed.
func Save(path string, r cycloid.Result) error {
	data, err := MarshalResult(r)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Result from a JSON file.
func Load(path string) (cycloid.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cycloid.Result{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalResult(data)
}

func unmarshalSeverity(s string) (cycloid.Severity, error) {
	switch sev := cycloid.Severity(s); sev {
	case cycloid.SeverityWarning, cycloid.SeverityError:
		return sev, nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}
