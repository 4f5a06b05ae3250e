// package transform contains the instance transform value type shared by the
// procedural generators and the instance buffer. It is not an
// interface-wrapped struct, just a plain value that composes into a model
// matrix.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a set of modifications applied to every vertex of a model
// instance: translate by Translation, rotate by Rotation about the model
// origin, scale by Scale. The zero value has a zero Scale and renders
// nothing visible; use Default or one of the shorthand constructors.
type Transform struct {
	// Translation is added to each vertex.
	Translation mgl32.Vec3
	// Rotation rotates each vertex about the model's origin.
	Rotation mgl32.Quat
	// Scale multiplies each vertex component-wise.
	Scale mgl32.Vec3
}

// Default returns the identity transform: no translation, identity rotation,
// unit scale.
//
// Returns:
//   - Transform: the identity transform
func Default() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Translation returns an identity transform translated by v.
//
// Parameters:
//   - v: the translation vector
//
// Returns:
//   - Transform: the resulting transform
func Translation(v mgl32.Vec3) Transform {
	t := Default()
	t.Translation = v
	return t
}

// Rotation returns an identity transform rotated by q.
//
// Parameters:
//   - q: the rotation quaternion
//
// Returns:
//   - Transform: the resulting transform
func Rotation(q mgl32.Quat) Transform {
	t := Default()
	t.Rotation = q
	return t
}

// Scaling returns an identity transform scaled by v.
//
// Parameters:
//   - v: the per-axis scale factors
//
// Returns:
//   - Transform: the resulting transform
func Scaling(v mgl32.Vec3) Transform {
	t := Default()
	t.Scale = v
	return t
}

// WithTranslation returns a copy of the transform with its translation replaced.
//
// Parameters:
//   - v: the new translation vector
//
// Returns:
//   - Transform: the modified copy
func (t Transform) WithTranslation(v mgl32.Vec3) Transform {
	t.Translation = v
	return t
}

// WithRotation returns a copy of the transform with its rotation replaced.
//
// Parameters:
//   - q: the new rotation quaternion
//
// Returns:
//   - Transform: the modified copy
func (t Transform) WithRotation(q mgl32.Quat) Transform {
	t.Rotation = q
	return t
}

// WithScale returns a copy of the transform with its scale replaced.
//
// Parameters:
//   - v: the new per-axis scale factors
//
// Returns:
//   - Transform: the modified copy
func (t Transform) WithScale(v mgl32.Vec3) Transform {
	t.Scale = v
	return t
}

// Matrix composes the transform into a column-major 4x4 model matrix,
// applying scale, then rotation, then translation.
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func (t Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}
