package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// WarningBoilerPlate is written as the first line of every saved preferences
// file as a deterrent to manual editing.
const WarningBoilerPlate = "# this file is generated by the emulator - edit with care"

// Disk associates preference keys with the in-memory pref values added with
// Add(), and persists them to a flat "key :: value" file.
type Disk struct {
	crit sync.Mutex
	path string
	keys []string
	vals map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file named by path is not touched until Save() or Load() is called.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path: path,
		vals: make(map[string]pref),
	}, nil
}

// Add registers a pref value under key. Values must be added before Load()
// or Save() can usefully see them.
func (d *Disk) Add(key string, v pref) error {
	d.crit.Lock()
	defer d.crit.Unlock()

	if _, ok := d.vals[key]; ok {
		return fmt.Errorf("prefs: duplicate key %q", key)
	}

	d.keys = append(d.keys, key)
	d.vals[key] = v

	return nil
}

// Save writes every registered pref value to disk, one "key :: value" line
// per entry, sorted by key for a stable diff. Entries already in the file
// whose keys were never Add()-ed to this Disk are written back unchanged.
func (d *Disk) Save() error {
	d.crit.Lock()
	defer d.crit.Unlock()

	kept := make(map[string]string)
	if data, err := os.ReadFile(d.path); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			kv := strings.SplitN(line, "::", 2)
			if k := strings.TrimSpace(kv[0]); len(kv) == 2 && d.vals[k] == nil {
				kept[k] = strings.TrimSpace(kv[1])
			}
		}
	}

	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)

	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	for k := range kept {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, ok := kept[k]
		if !ok {
			v = d.vals[k].String()
		}
		fmt.Fprintf(w, "%s :: %s\n", k, v)
	}

	return w.Flush()
}

// Load reads the disk file and calls Set() on every registered pref value
// named in it. If failOnUnknownKey is false, keys present in the file that
// were never Add()-ed are silently skipped rather than returning an error.
func (d *Disk) Load(failOnUnknownKey bool) error {
	d.crit.Lock()
	defer d.crit.Unlock()

	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curatedNoPrefsFile
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "::", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if isDefunct(key) {
			continue
		}

		v, ok := d.vals[key]
		if !ok {
			if failOnUnknownKey {
				return fmt.Errorf("prefs: unknown key %q", key)
			}
			continue
		}

		if err := v.Set(value); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return scanner.Err()
}
