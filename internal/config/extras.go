package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// extrasPath returns the storage file for user-added probe packages.
func extrasPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "packages.json"), nil
}

func normalize(in []string) []string {
	set := map[string]struct{}{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LoadExtras returns the user-added pip packages probed on top of the fixed
// registry. Missing file yields an empty list without error.
func LoadExtras() ([]string, error) {
	p, err := extrasPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, err
	}
	return normalize(arr), nil
}

func saveExtras(list []string) error {
	p, err := extrasPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(normalize(list), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// AddExtras adds packages to the extras list and reports which were new.
func AddExtras(names []string) (added, existed []string, err error) {
	cur, err := LoadExtras()
	if err != nil {
		return nil, nil, err
	}
	set := map[string]bool{}
	for _, s := range cur {
		set[s] = true
	}
	for _, s := range normalize(names) {
		if set[s] {
			existed = append(existed, s)
		} else {
			set[s] = true
			added = append(added, s)
		}
	}
	next := make([]string, 0, len(set))
	for k := range set {
		next = append(next, k)
	}
	if err := saveExtras(next); err != nil {
		return nil, nil, err
	}
	return added, existed, nil
}

// RemoveExtras removes packages from the extras list and reports which were
// actually present.
func RemoveExtras(names []string) (removed, missing []string, err error) {
	cur, err := LoadExtras()
	if err != nil {
		return nil, nil, err
	}
	set := map[string]bool{}
	for _, s := range cur {
		set[s] = true
	}
	for _, s := range normalize(names) {
		if set[s] {
			delete(set, s)
			removed = append(removed, s)
		} else {
			missing = append(missing, s)
		}
	}
	next := make([]string, 0, len(set))
	for k := range set {
		next = append(next, k)
	}
	if err := saveExtras(next); err != nil {
		return nil, nil, err
	}
	return removed, missing, nil
}
