package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// mockHittable records the intervals it was queried with
type mockHittable struct {
	t       float64
	queries []core.Interval
}

func (m *mockHittable) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	m.queries = append(m.queries, rayT)
	if !rayT.Surrounds(m.t) {
		return nil, false
	}
	return &material.HitRecord{T: m.t, Point: ray.At(m.t)}, true
}

func TestHittableList_ReturnsNearestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	// Along -z from the origin: sphere A surface at t=2, sphere B surface at t=5
	sphereA := NewSphere(core.NewVec3(0, 0, -3), 1, near)
	sphereB := NewSphere(core.NewVec3(0, 0, -6), 1, far)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := map[string]*HittableList{
		"near first": NewHittableList(sphereA, sphereB),
		"far first":  NewHittableList(sphereB, sphereA),
	}

	for name, world := range orders {
		t.Run(name, func(t *testing.T) {
			hit, isHit := world.Hit(ray, hitRange)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-2) > 1e-9 {
				t.Errorf("Expected t=2, got %f", hit.T)
			}
			if hit.Material != material.Material(near) {
				t.Errorf("Expected nearest sphere's material")
			}
		})
	}
}

func TestHittableList_ShrinksSearchInterval(t *testing.T) {
	first := &mockHittable{t: 5}
	second := &mockHittable{t: 2}
	third := &mockHittable{t: 3}
	world := NewHittableList(first, second, third)

	hit, isHit := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), core.NewInterval(0.001, 100))
	if !isHit || hit.T != 2 {
		t.Fatalf("Expected hit at t=2, got %+v", hit)
	}

	expectedMax := []float64{100, 5, 2}
	for i, m := range []*mockHittable{first, second, third} {
		if len(m.queries) != 1 {
			t.Fatalf("Object %d queried %d times", i, len(m.queries))
		}
		if m.queries[0].Max != expectedMax[i] || m.queries[0].Min != 0.001 {
			t.Errorf("Object %d queried with %+v, expected max %f", i, m.queries[0], expectedMax[i])
		}
	}
}

func TestHittableList_EmptyAndMiss(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	world := NewHittableList()
	if _, isHit := world.Hit(ray, hitRange); isHit {
		t.Error("Expected empty list to miss")
	}

	world.Add(NewSphere(core.NewVec3(5, 5, 5), 1, nil))
	if hit, isHit := world.Hit(ray, hitRange); isHit || hit != nil {
		t.Error("Expected miss")
	}

	if world.Len() != 1 {
		t.Errorf("Expected 1 object, got %d", world.Len())
	}
	world.Clear()
	if world.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", world.Len())
	}
}

func TestHittableList_Nested(t *testing.T) {
	inner := NewHittableList(NewSphere(core.NewVec3(0, 0, -3), 1, nil))
	outer := NewHittableList(NewSphere(core.NewVec3(0, 0, -10), 1, nil), inner)

	hit, isHit := outer.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), hitRange)
	if !isHit || math.Abs(hit.T-2) > 1e-9 {
		t.Fatalf("Expected nested list hit at t=2, got %+v", hit)
	}
}
