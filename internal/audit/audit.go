// Package audit keeps a copy of every user-data payload the application
// accepts from outside, so an import can be inspected or replayed later.
package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeKind = regexp.MustCompile(`[^a-z0-9_-]+`)

type Auditor struct {
	Dir string
}

func NewAuditor(dir string) *Auditor {
	return &Auditor{Dir: dir}
}

// Record writes payload as indented JSON to "<kind>-<uuid>.json" and returns
// the file name. A nil Auditor records nothing.
func (a *Auditor) Record(kind string, payload any) (string, error) {
	if a == nil || a.Dir == "" {
		return "", nil
	}

	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audit directory: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	kind = unsafeKind.ReplaceAllString(strings.ToLower(kind), "_")
	if kind == "" {
		kind = "payload"
	}
	filename := fmt.Sprintf("%s-%s.json", kind, uuid.New().String())

	if err := os.WriteFile(filepath.Join(a.Dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	log.Printf("Audit: saved %s", filename)
	return filename, nil
}
