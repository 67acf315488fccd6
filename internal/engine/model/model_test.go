package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangle = `
positions:
  - [0, 0, 0]
  - [1, 0, 0]
  - [0, 1, 0]
uvs:
  - [0, 0]
  - [1, 0]
  - [0, 1]
indices: [0, 1, 2]
`

func TestDecodeTriangle(t *testing.T) {
	d, err := Decode([]byte(triangle))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	vertices := d.Vertices()
	if len(vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(vertices))
	}

	wantPos := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	wantUV := [][2]float32{{0, 0}, {1, 0}, {0, 1}}
	for i, v := range vertices {
		if v.Position != wantPos[i] {
			t.Errorf("vertex %d position = %v, want %v", i, v.Position, wantPos[i])
		}
		if v.UV != wantUV[i] {
			t.Errorf("vertex %d uv = %v, want %v", i, v.UV, wantUV[i])
		}
	}

	if len(d.Indices) != 3 || d.Indices[0] != 0 || d.Indices[1] != 1 || d.Indices[2] != 2 {
		t.Errorf("indices = %v, want [0 1 2]", d.Indices)
	}
}

func TestDecodeJSONFlowForm(t *testing.T) {
	src := `{"positions": [[0,0,0],[1,0,0],[0,1,0]], "uvs": [[0,0],[1,0],[0,1]], "indices": [0,1,2]}`

	d, err := Decode([]byte(src))
	if err != nil {
		t.Fatalf("Decode of JSON flow form failed: %v", err)
	}
	if len(d.Vertices()) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(d.Vertices()))
	}
}

func TestDecodeMissingIndices(t *testing.T) {
	src := `
positions:
  - [0, 0, 0]
uvs:
  - [0, 0]
`
	_, err := Decode([]byte(src))
	if err == nil {
		t.Fatal("expected error for missing indices field")
	}
	if !strings.Contains(err.Error(), "indices") {
		t.Errorf("error should mention indices, got: %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("positions: [this is: not valid"))
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestDecodeIndexOutOfRange(t *testing.T) {
	src := `
positions:
  - [0, 0, 0]
  - [1, 0, 0]
  - [0, 1, 0]
uvs:
  - [0, 0]
  - [1, 0]
  - [0, 1]
indices: [0, 1, 9]
`
	_, err := Decode([]byte(src))
	if err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error should mention the bad index, got: %v", err)
	}
}

func TestDecodeIndexCountNotTriangles(t *testing.T) {
	src := `
positions:
  - [0, 0, 0]
  - [1, 0, 0]
uvs:
  - [0, 0]
  - [1, 0]
indices: [0, 1]
`
	_, err := Decode([]byte(src))
	if err == nil {
		t.Fatal("expected error for non-triangle index count")
	}
}

func TestVerticesTruncatesToShorter(t *testing.T) {
	d := &Data{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		UVs:       [][2]float32{{0, 0}, {1, 0}},
		Indices:   []uint16{0, 1, 2},
	}

	vertices := d.Vertices()
	if len(vertices) != 2 {
		t.Errorf("expected truncation to 2 vertices, got %d", len(vertices))
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.model")
	if err := os.WriteFile(path, []byte(triangle), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(d.Positions) != 3 {
		t.Errorf("expected 3 positions, got %d", len(d.Positions))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.model"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "nope.model") {
		t.Errorf("error should include the path, got: %v", err)
	}
}
