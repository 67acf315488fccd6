package model

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/logger"
)

// Mesh is geometry uploaded to the GPU. Buffer lifetime matches the
// mesh; call Close to release. Requires a current OpenGL context.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewMesh uploads the geometry's vertex and index buffers.
func NewMesh(d *Data) (*Mesh, error) {
	vertices := d.Vertices()
	indices := d.Indices
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("empty geometry: %d vertices, %d indices", len(vertices), len(indices))
	}

	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// TexCoord
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Int("vertices", len(vertices)),
		zap.Int("indices", len(indices)),
		zap.Uint32("vao", m.vao),
	)
	return m, nil
}

// Draw issues an indexed draw of the whole mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// Close releases GPU buffers.
func (m *Mesh) Close() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
