package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/engine"
)

func boxObject(name string, pos, size, rot rl.Vector3, layer Layer) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.Transform.Rotation = rot
	c := NewBoxCollider(size)
	c.Layer = layer
	g.AddComponent(c)
	return g
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

var down = rl.Vector3{Y: -1}

func TestRaycastHitsBoxFace(t *testing.T) {
	w := NewWorld()
	w.AddObject(boxObject("floor", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{}, LayerTerrain))

	hit, ok := w.Raycast(rl.Vector3{Y: 5}, down, 10, LayerAll)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !near(hit.Distance, 4) {
		t.Errorf("distance = %v, want 4", hit.Distance)
	}
	if !near(hit.Normal.Y, 1) {
		t.Errorf("normal = (%v, %v, %v), want +Y", hit.Normal.X, hit.Normal.Y, hit.Normal.Z)
	}
	if !near(hit.Point.Y, 1) {
		t.Errorf("point.Y = %v, want 1", hit.Point.Y)
	}
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	w := NewWorld()
	w.AddObject(boxObject("floor", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{}, LayerTerrain))

	if _, ok := w.Raycast(rl.Vector3{Y: 5}, down, 3, LayerAll); ok {
		t.Error("hit reported beyond max distance")
	}
}

func TestLayerMaskFilters(t *testing.T) {
	w := NewWorld()
	w.AddObject(boxObject("pond", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{}, LayerWater))

	mask := LayerAll &^ LayerWater
	if _, ok := w.Raycast(rl.Vector3{Y: 5}, down, 10, mask); ok {
		t.Error("masked-out layer still hit")
	}
	if _, ok := w.Raycast(rl.Vector3{Y: 5}, down, 10, LayerAll); !ok {
		t.Error("expected a hit with the full mask")
	}
}

func TestSphereCastInflatesSurface(t *testing.T) {
	w := NewWorld()
	w.AddObject(boxObject("floor", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{}, LayerTerrain))

	hit, ok := w.SphereCast(rl.Vector3{Y: 5}, 0.5, down, 10, LayerAll)
	if !ok {
		t.Fatal("expected a hit")
	}
	// The swept sphere touches half a radius sooner than the bare ray.
	if !near(hit.Distance, 3.5) {
		t.Errorf("distance = %v, want 3.5", hit.Distance)
	}
}

func TestCastStartingInsideReportsNoHit(t *testing.T) {
	w := NewWorld()
	w.AddObject(boxObject("block", rl.Vector3{}, rl.Vector3{X: 4, Y: 4, Z: 4}, rl.Vector3{}, LayerObstacle))

	if _, ok := w.Raycast(rl.Vector3{}, down, 10, LayerAll); ok {
		t.Error("cast from inside the box should see nothing")
	}
	if _, ok := w.SphereCast(rl.Vector3{Y: 2.1}, 0.3, down, 10, LayerAll); ok {
		t.Error("sphere overlapping the surface at start should see nothing")
	}
}

func TestNearestHitWins(t *testing.T) {
	w := NewWorld()
	far := boxObject("far", rl.Vector3{Z: -10}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{}, LayerObstacle)
	nearBox := boxObject("near", rl.Vector3{Z: -5}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{}, LayerObstacle)
	w.AddObject(far)
	w.AddObject(nearBox)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 20, LayerAll)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Object != nearBox {
		t.Errorf("hit %s, want the near box", hit.Object.Name)
	}
	if !near(hit.Distance, 4.5) {
		t.Errorf("distance = %v, want 4.5", hit.Distance)
	}
}

func TestRotatedBoxReportsSlopedNormal(t *testing.T) {
	w := NewWorld()
	ramp := boxObject("ramp", rl.Vector3{}, rl.Vector3{X: 4, Y: 0.5, Z: 4}, rl.Vector3{Z: 45}, LayerTerrain)
	w.AddObject(ramp)

	hit, ok := w.Raycast(rl.Vector3{Y: 5}, down, 10, LayerAll)
	if !ok {
		t.Fatal("expected a hit")
	}
	want := float32(math.Sqrt2 / 2)
	if !near(hit.Normal.Y, want) || !near(hit.Normal.X, -want) {
		t.Errorf("normal = (%v, %v, %v), want (%v, %v, 0)", hit.Normal.X, hit.Normal.Y, hit.Normal.Z, -want, want)
	}
}

func TestSphereColliderCast(t *testing.T) {
	w := NewWorld()
	g := engine.NewGameObject("ball")
	g.Transform.Position = rl.Vector3{Z: -5}
	c := NewSphereCollider(1)
	c.Layer = LayerObstacle
	g.AddComponent(c)
	w.AddObject(g)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 20, LayerAll)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !near(hit.Distance, 4) {
		t.Errorf("distance = %v, want 4", hit.Distance)
	}
	if !near(hit.Normal.Z, 1) {
		t.Errorf("normal.Z = %v, want 1", hit.Normal.Z)
	}
}

func TestRemovedAndInactiveCollidersIgnored(t *testing.T) {
	w := NewWorld()
	a := boxObject("a", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{}, LayerTerrain)
	w.AddObject(a)
	w.RemoveObject(a)
	if _, ok := w.Raycast(rl.Vector3{Y: 5}, down, 10, LayerAll); ok {
		t.Error("removed collider still hit")
	}

	b := boxObject("b", rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{}, LayerTerrain)
	b.Active = false
	w.AddObject(b)
	if _, ok := w.Raycast(rl.Vector3{Y: 5}, down, 10, LayerAll); ok {
		t.Error("inactive collider still hit")
	}
}
