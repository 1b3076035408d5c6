package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/engine"
)

// Hit describes the nearest geometry struck by a cast.
type Hit struct {
	Object   *engine.GameObject
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// World is the cast backend: a flat registry of collidable objects queried
// synchronously by the controllers every tick.
type World struct {
	Colliders []*engine.GameObject
}

func NewWorld() *World {
	return &World{
		Colliders: make([]*engine.GameObject, 0),
	}
}

func (w *World) AddObject(g *engine.GameObject) {
	w.Colliders = append(w.Colliders, g)
}

func (w *World) RemoveObject(g *engine.GameObject) {
	for i, obj := range w.Colliders {
		if obj == g {
			w.Colliders = append(w.Colliders[:i], w.Colliders[i+1:]...)
			return
		}
	}
}

// Raycast returns the closest hit along a ray, filtered by layer mask.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask Layer) (Hit, bool) {
	return w.SphereCast(origin, 0, direction, maxDistance, mask)
}

// SphereCast sweeps a sphere of the given radius along a ray and returns
// the closest hit whose collider layer intersects the mask. A radius of
// zero degenerates to a plain raycast.
func (w *World) SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask Layer) (Hit, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return Hit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := Hit{Distance: maxDistance}
	found := false

	for _, obj := range w.Colliders {
		if !obj.Active {
			continue
		}
		if box := engine.GetComponent[*BoxCollider](obj); box != nil && box.Layer&mask != 0 {
			if hit, ok := castBox(origin, radius, direction, box, maxDistance); ok && hit.Distance <= closest.Distance {
				closest = hit
				closest.Object = obj
				found = true
			}
		}
		if sphere := engine.GetComponent[*SphereCollider](obj); sphere != nil && sphere.Layer&mask != 0 {
			if hit, ok := castSphere(origin, radius, direction, sphere, maxDistance); ok && hit.Distance <= closest.Distance {
				closest = hit
				closest.Object = obj
				found = true
			}
		}
	}

	return closest, found
}

// castBox sweeps a sphere against an oriented box. The test runs in the
// box's local frame against the box inflated by the sphere radius, which
// is exact on faces and slightly conservative at corners.
func castBox(origin rl.Vector3, radius float32, direction rl.Vector3, box *BoxCollider, maxDistance float32) (Hit, bool) {
	center := box.Center()
	half := box.WorldHalfSize()
	half.X += radius
	half.Y += radius
	half.Z += radius
	axes := box.Axes()

	// Project ray into box local space
	rel := rl.Vector3Subtract(origin, center)
	localOrigin := rl.Vector3{
		X: rl.Vector3DotProduct(rel, axes[0]),
		Y: rl.Vector3DotProduct(rel, axes[1]),
		Z: rl.Vector3DotProduct(rel, axes[2]),
	}
	localDir := rl.Vector3{
		X: rl.Vector3DotProduct(direction, axes[0]),
		Y: rl.Vector3DotProduct(direction, axes[1]),
		Z: rl.Vector3DotProduct(direction, axes[2]),
	}

	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	entryAxis := -1
	entrySign := float32(0)

	origins := [3]float32{localOrigin.X, localOrigin.Y, localOrigin.Z}
	dirs := [3]float32{localDir.X, localDir.Y, localDir.Z}
	halves := [3]float32{half.X, half.Y, half.Z}

	for i := 0; i < 3; i++ {
		if dirs[i] != 0 {
			t1 := (-halves[i] - origins[i]) / dirs[i]
			t2 := (halves[i] - origins[i]) / dirs[i]
			sign := float32(-1)
			if t1 > t2 {
				t1, t2 = t2, t1
				sign = 1
			}
			if t1 > tmin {
				tmin = t1
				entryAxis = i
				entrySign = sign
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origins[i] < -halves[i] || origins[i] > halves[i] {
			return Hit{}, false
		}
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		// Cast started inside the (inflated) box. No hit is reported, same
		// as the usual engine backends; the camera's inverse cast exists
		// precisely to cover this blind spot.
		return Hit{}, false
	}

	normal := rl.Vector3{}
	if entryAxis >= 0 {
		normal = rl.Vector3Scale(axes[entryAxis], entrySign)
	}

	return Hit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   normal,
		Distance: t,
	}, true
}

// castSphere sweeps a sphere against a sphere collider (exact: the swept
// sphere hits when the ray passes within the combined radii).
func castSphere(origin rl.Vector3, radius float32, direction rl.Vector3, sphere *SphereCollider, maxDistance float32) (Hit, bool) {
	center := sphere.Center()
	combined := sphere.Radius + radius

	oc := rl.Vector3Subtract(origin, center)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - combined*combined

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sqrtD := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sqrtD) / 2
	if t < 0 || t > maxDistance {
		// Behind the origin, inside the combined radius, or out of reach.
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return Hit{
		Point:    point,
		Normal:   rl.Vector3Normalize(rl.Vector3Subtract(point, center)),
		Distance: t,
	}, true
}
