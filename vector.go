package vbuf

import "golang.org/x/image/math/f32"

// SetVec2 writes v to the first two components of the current vertex.
// Components the element does not have are skipped.
func (a *Accessor) SetVec2(v f32.Vec2) {
	a.Set2(float64(v[0]), float64(v[1]))
}

// SetVec3 writes v to the first three components of the current vertex.
func (a *Accessor) SetVec3(v f32.Vec3) {
	a.Set3(float64(v[0]), float64(v[1]), float64(v[2]))
}

// SetVec4 writes v to the four components of the current vertex.
func (a *Accessor) SetVec4(v f32.Vec4) {
	a.Set4(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

// Vec2 returns the first two components of the current vertex. Components
// the element does not have read as 0.
func (a *Accessor) Vec2() f32.Vec2 {
	return f32.Vec2{float32(a.load(0)), float32(a.load(1))}
}

// Vec3 returns the first three components of the current vertex.
func (a *Accessor) Vec3() f32.Vec3 {
	return f32.Vec3{float32(a.load(0)), float32(a.load(1)), float32(a.load(2))}
}

// Vec4 returns the four components of the current vertex.
func (a *Accessor) Vec4() f32.Vec4 {
	return f32.Vec4{
		float32(a.load(0)),
		float32(a.load(1)),
		float32(a.load(2)),
		float32(a.load(3)),
	}
}
