// internal/defs/loader.go
package defs

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type waveFile struct {
	Waves []WaveDefinition `yaml:"waves"`
}

// LoadWaveDefinitions reads a YAML wave file. Waves without an explicit
// number are numbered by their position in the file.
func LoadWaveDefinitions(path string) (WaveTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}
	return ParseWaveDefinitions(data)
}

// ParseWaveDefinitions decodes wave definitions from YAML.
func ParseWaveDefinitions(data []byte) (WaveTable, error) {
	var file waveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}
	if len(file.Waves) == 0 {
		return nil, ErrUnknownWave
	}

	table := make(WaveTable, len(file.Waves))
	for i, def := range file.Waves {
		if def.Number == 0 {
			def.Number = i + 1
		}
		table[def.Number] = def
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("loaded wave definitions", "count", len(table))
	return table, nil
}

// MarshalWaveDefinitions encodes a table in the format ParseWaveDefinitions
// reads, ordered by wave number.
func MarshalWaveDefinitions(table WaveTable) ([]byte, error) {
	numbers := make([]int, 0, len(table))
	for n := range table {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	file := waveFile{Waves: make([]WaveDefinition, 0, len(numbers))}
	for _, n := range numbers {
		def := table[n]
		def.Number = n
		file.Waves = append(file.Waves, def)
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wave definitions: %w", err)
	}
	return data, nil
}
