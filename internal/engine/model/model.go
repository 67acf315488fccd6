// Package model loads geometry descriptions and uploads them as GPU meshes.
package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vertex is the GPU vertex layout: 3 position floats followed by
// 2 texture-coordinate floats, 20 bytes tightly packed.
type Vertex struct {
	Position [3]float32
	UV       [2]float32
}

// Data is a raw geometry description: per-vertex positions and texture
// coordinates plus a triangle-list index array. Immutable after load.
type Data struct {
	Positions [][3]float32 `yaml:"positions"`
	UVs       [][2]float32 `yaml:"uvs"`
	Indices   []uint16     `yaml:"indices"`
}

// Decode parses a geometry description. The format is a mapping with
// `positions`, `uvs` and `indices` fields; since descriptions are
// parsed as YAML the JSON flow form is accepted as well.
func Decode(data []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing geometry: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads and decodes a geometry description file.
func Load(path string) (*Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading model %s: %w", path, err)
	}
	d, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return d, nil
}

func (d *Data) validate() error {
	if len(d.Positions) == 0 {
		return fmt.Errorf("geometry has no positions")
	}
	if len(d.Indices) == 0 {
		return fmt.Errorf("geometry has no indices")
	}
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= len(d.Positions) {
			return fmt.Errorf("index %d out of range: %d >= %d positions", i, idx, len(d.Positions))
		}
	}
	return nil
}

// Vertices pairs positions with texture coordinates in order. A length
// mismatch truncates to the shorter array rather than failing.
func (d *Data) Vertices() []Vertex {
	n := len(d.Positions)
	if len(d.UVs) < n {
		n = len(d.UVs)
	}

	vertices := make([]Vertex, n)
	for i := 0; i < n; i++ {
		vertices[i] = Vertex{Position: d.Positions[i], UV: d.UVs[i]}
	}
	return vertices
}
