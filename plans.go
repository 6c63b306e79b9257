package wealthplan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// A named plan is a portfolio snapshot saved as "<name>.json" in a plans
// directory, so the user can keep several allocation strategies side by side
// and switch between them.

// PlanInfo describes one saved plan.
type PlanInfo struct {
	Name         string
	Path         string
	LastModified time.Time
}

// validPlanName rejects names that would escape the plans directory.
func validPlanName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errInvalidValue("empty plan name")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return errInvalidValue("plan name %q", name)
	}
	return nil
}

// SavePlan writes the portfolio under the given plan name and returns the
// file path. Unless overwrite is set, saving over an existing plan fails
// with ErrPlanExists so the caller can ask for confirmation.
func SavePlan(dir, name string, p *Portfolio, overwrite bool) (string, error) {
	if err := validPlanName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create plans directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, name+".json")
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("plan %q: %w", name, ErrPlanExists)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create plan file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodePortfolio(f, p); err != nil {
		return "", fmt.Errorf("could not write plan %q: %w", name, err)
	}
	return path, nil
}

// ListPlans returns the saved plans sorted by modification time, newest
// first. A missing plans directory is an empty list, not an error.
func ListPlans(dir string) ([]PlanInfo, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read plans directory %q: %w", dir, err)
	}

	var plans []PlanInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("could not stat plan %q: %w", e.Name(), err)
		}
		plans = append(plans, PlanInfo{
			Name:         strings.TrimSuffix(e.Name(), ".json"),
			Path:         filepath.Join(dir, e.Name()),
			LastModified: info.ModTime(),
		})
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].LastModified.After(plans[j].LastModified)
	})
	return plans, nil
}

// FindPlan returns the saved plan with the given name.
func FindPlan(dir, name string) (PlanInfo, error) {
	plans, err := ListPlans(dir)
	if err != nil {
		return PlanInfo{}, err
	}
	for _, plan := range plans {
		if plan.Name == name {
			return plan, nil
		}
	}
	return PlanInfo{}, fmt.Errorf("could not find plan %q in %q", name, dir)
}

// LoadPlan reads and decodes the plan file at the given path.
func LoadPlan(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open plan file %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode plan file %q: %w", path, err)
	}
	return p, nil
}

// DeletePlan removes the plan file at the given path.
func DeletePlan(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("could not delete plan file %q: %w", path, err)
	}
	return nil
}
