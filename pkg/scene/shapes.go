package scene

// The two demo meshes. Vertex colors are forwarded to the fragment stage
// but the shipped fragment shader only samples the texture; they stay in
// the layout so the attribute contract is exercised end to end.

// Pyramid builds a square pyramid: a 2x2 base on the y=0 plane with the
// apex at (1, 2, 1).
func Pyramid() *Mesh {
	indices := []uint32{
		0, 3, 2,
		0, 2, 1,
		0, 4, 1,
		0, 3, 4,
		3, 2, 4,
		2, 1, 4,
	}

	b := newMeshBuilder(5)
	// column, position xyz, color rgb, texel uv
	b.setVertex(0, 0, 0, 0, 1, 0, 0, 0, 0)
	b.setVertex(1, 2, 0, 0, 0, 1, 0, 0, 1)
	b.setVertex(2, 2, 0, 2, 0, 0, 1, 1, 0)
	b.setVertex(3, 0, 0, 2, 1, 0, 0, 1, 1)
	b.setVertex(4, 1, 2, 1, 0, 1, 0, 0, 0)

	mesh, err := b.build(indices)
	if err != nil {
		panic(err)
	}
	return mesh
}

// Cube builds a 2x2x2 cube with the bottom face on the y=0 plane. Vertices
// 0-3 are the bottom ring, 4-7 the top ring directly above them.
func Cube() *Mesh {
	indices := []uint32{
		0, 3, 2,
		0, 2, 1,
		0, 4, 1,
		1, 5, 2,
		2, 6, 3,
		3, 7, 0,
		4, 5, 1,
		5, 6, 2,
		6, 7, 3,
		7, 4, 0,
		4, 7, 5,
		5, 7, 6,
	}

	b := newMeshBuilder(8)
	// Bottom ring.
	b.setVertex(0, 0, 0, 0, 1, 0, 0, 0, 0)
	b.setVertex(1, 2, 0, 0, 0, 1, 0, 0, 1)
	b.setVertex(2, 2, 0, 2, 0, 0, 1, 1, 0)
	b.setVertex(3, 0, 0, 2, 1, 0, 0, 1, 1)
	// Top ring.
	b.setVertex(4, 0, 2, 0, 1, 0, 0, 0, 0)
	b.setVertex(5, 2, 2, 0, 0, 1, 0, 0, 1)
	b.setVertex(6, 2, 2, 2, 0, 0, 1, 1, 0)
	b.setVertex(7, 0, 2, 2, 1, 0, 0, 1, 1)

	mesh, err := b.build(indices)
	if err != nil {
		panic(err)
	}
	return mesh
}
