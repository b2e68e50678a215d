package geometry

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// VertexSize is the byte size of one marshaled Vertex.
const VertexSize = 48

// Vertex is one tessellated sphere vertex, laid out for a GPU vertex buffer.
type Vertex struct {
	Position [3]float32 // offset  0: position in model space
	Normal   [3]float32 // offset 12: outward unit normal
	TexCoord [2]float32 // offset 24: equirectangular UV, v = 0 at the north pole
	Tangent  [4]float32 // offset 32: eastward tangent (xyz) + handedness (w)
}

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the vertex into a little-endian byte buffer.
//
// Returns:
//   - []byte: VertexSize bytes ready for GPU upload.
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, VertexSize)
	v.put(buf)
	return buf
}

func (v *Vertex) put(buf []byte) {
	fields := [12]float32{
		v.Position[0], v.Position[1], v.Position[2],
		v.Normal[0], v.Normal[1], v.Normal[2],
		v.TexCoord[0], v.TexCoord[1],
		v.Tangent[0], v.Tangent[1], v.Tangent[2], v.Tangent[3],
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}
