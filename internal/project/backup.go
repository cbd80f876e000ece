package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/loadplanner/internal/engine"
	"github.com/piwi3910/loadplanner/internal/model"
)

// SolveEnvelope is the on-disk round-trip format for a single solve call:
// the request that produced it, the winning container, and the preference
// config active at solve time. This is not the item catalog (that stays an
// external collaborator) — it's a convenience snapshot for replaying or
// inspecting one prior solve from the CLI.
type SolveEnvelope struct {
	Version         string             `json:"version"`
	CreatedAt       string             `json:"created_at"`
	Request         engine.SolveRequest `json:"request"`
	Container       *model.Container   `json:"container"`
	WinningStrategy string             `json:"winning_strategy"`
	Score           float64            `json:"score"`
	AppConfig       model.AppConfig    `json:"app_config"`
}

// ExportSolveEnvelope writes a solved request and its result to a single JSON
// file at the specified path, creating any missing parent directories.
func ExportSolveEnvelope(exportPath string, req engine.SolveRequest, result engine.SolveResult, config model.AppConfig) error {
	envelope := SolveEnvelope{
		Version:         "1.0.0",
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		Request:         req,
		Container:       result.Container,
		WinningStrategy: result.WinningStrategy,
		Score:           result.Score,
		AppConfig:       config,
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal solve envelope: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write solve envelope: %w", err)
	}
	return nil
}

// ImportSolveEnvelope reads a previously exported solve envelope from disk.
func ImportSolveEnvelope(importPath string) (SolveEnvelope, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return SolveEnvelope{}, fmt.Errorf("failed to read solve envelope: %w", err)
	}
	var envelope SolveEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return SolveEnvelope{}, fmt.Errorf("failed to parse solve envelope: %w", err)
	}
	if envelope.Version == "" {
		return SolveEnvelope{}, fmt.Errorf("invalid solve envelope: missing version field")
	}
	if envelope.AppConfig.RecentRequests == nil {
		envelope.AppConfig.RecentRequests = []string{}
	}
	return envelope, nil
}
