package collide2d

import (
	"math"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/briskengine/collide2d/geom"
	"github.com/briskengine/collide2d/shape"
)

type fixedBody struct{ p geom.Vector }

func (f fixedBody) Position() geom.Vector { return f.p }

type scenarioShape struct {
	Kind       string     `yaml:"kind"`
	Center     [2]float64 `yaml:"center"`
	Radius     float64    `yaml:"radius"`
	HalfExtent float64    `yaml:"half_extent"`
	A          [2]float64 `yaml:"a"`
	B          [2]float64 `yaml:"b"`
}

type scenarioExpect struct {
	Count  int        `yaml:"count"`
	Normal [2]float64 `yaml:"normal"`
	Dist   float64    `yaml:"dist"`
}

type scenario struct {
	Name    string         `yaml:"name"`
	ShapeA  scenarioShape  `yaml:"shape_a"`
	ShapeB  scenarioShape  `yaml:"shape_b"`
	Expect  scenarioExpect `yaml:"expect"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("reading testdata/scenarios.yaml: %v", err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("parsing testdata/scenarios.yaml: %v", err)
	}
	return f.Scenarios
}

// buildShape turns a fixture description into a live shape.Shape, with its
// own fixedBody at the shape's nominal center.
func buildShape(s scenarioShape, id uint32) shape.Shape {
	switch s.Kind {
	case "circle":
		center := geom.New(s.Center[0], s.Center[1])
		return &shape.CircleShape{BodyRef: fixedBody{center}, Center: center, Radius: s.Radius, ID: id}
	case "square":
		center := geom.New(s.Center[0], s.Center[1])
		h := s.HalfExtent
		verts := []geom.Vector{
			geom.New(center.X()-h, center.Y()-h),
			geom.New(center.X()+h, center.Y()-h),
			geom.New(center.X()+h, center.Y()+h),
			geom.New(center.X()-h, center.Y()+h),
		}
		planes := make([]shape.HalfPlane, len(verts))
		for i := range verts {
			a := verts[i]
			b := verts[(i+1)%len(verts)]
			n := geom.SafeNormalize(geom.Perp(b.Sub(a)).Mul(-1), geom.New(1, 0))
			planes[i] = shape.HalfPlane{Normal: n, Offset: a.Dot(n)}
		}
		return &shape.PolygonShape{BodyRef: fixedBody{center}, Vertices: verts, Planes: planes, ID: id}
	case "segment":
		a := geom.New(s.A[0], s.A[1])
		b := geom.New(s.B[0], s.B[1])
		mid := a.Add(b).Mul(0.5)
		normal := geom.SafeNormalize(geom.Perp(b.Sub(a)), geom.New(0, 1))
		return &shape.SegmentShape{BodyRef: fixedBody{mid}, A: a, B: b, Radius: s.Radius, Normal: normal, ID: id}
	default:
		panic("unknown scenario shape kind: " + s.Kind)
	}
}

func TestConcreteScenarios(t *testing.T) {
	EnableSegmentToSegmentCollisions()

	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			a := buildShape(sc.ShapeA, 1)
			b := buildShape(sc.ShapeB, 2)

			// CollideShapes requires shape_type(a) <= shape_type(b); N always
			// points from a to b, so swapping the fixture order flips the
			// expectation's sign along with the arguments.
			swapped := false
			if a.ShapeType() > b.ShapeType() {
				a, b = b, a
				swapped = true
			}

			info := CollideShapes(a, b, 0)

			if info.Count != sc.Expect.Count {
				t.Fatalf("count = %d, want %d", info.Count, sc.Expect.Count)
			}
			if info.Count == 0 {
				return
			}

			if sc.Expect.Normal != [2]float64{0, 0} {
				want := geom.New(sc.Expect.Normal[0], sc.Expect.Normal[1])
				if swapped {
					want = want.Mul(-1)
				}
				if info.N.Sub(want).Len() > 1e-6 {
					t.Errorf("N = %v, want ~%v", info.N, want)
				}
			}

			for _, c := range info.Contacts[:info.Count] {
				if math.Abs(c.Dist-sc.Expect.Dist) > 1e-6 {
					t.Errorf("contact dist = %v, want ~%v", c.Dist, sc.Expect.Dist)
				}
			}
		})
	}
}
