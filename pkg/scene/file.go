package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Material kinds understood by scene files
const (
	KindLambertian = "lambertian"
	KindMetal      = "metal"
	KindDielectric = "dielectric"
)

// File is the on-disk JSON form of a scene. Materials live in a name-keyed
// table and spheres refer to them by name, so one material can be shared by
// many spheres.
type File struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Camera      FileCamera              `json:"camera"`
	Materials   map[string]FileMaterial `json:"materials"`
	Spheres     []FileSphere            `json:"spheres"`
}

// FileCamera holds camera settings. Missing fields take the values of
// renderer.DefaultCameraConfig.
type FileCamera struct {
	AspectRatio     *float64 `json:"aspect_ratio,omitempty"`
	Width           *int     `json:"width,omitempty"`
	SamplesPerPixel *int     `json:"samples_per_pixel,omitempty"`
	MaxDepth        *int     `json:"max_depth,omitempty"`
	VFov            *float64 `json:"vfov,omitempty"`
	LookFrom        *Vec     `json:"look_from,omitempty"`
	LookAt          *Vec     `json:"look_at,omitempty"`
	Up              *Vec     `json:"up,omitempty"`
	DefocusAngle    *float64 `json:"defocus_angle,omitempty"`
	FocusDistance   *float64 `json:"focus_distance,omitempty"`
}

// FileMaterial describes one material; which fields apply depends on Kind
type FileMaterial struct {
	Kind            string     `json:"kind"`
	Albedo          *ColorSpec `json:"albedo,omitempty"`
	Fuzz            float64    `json:"fuzz,omitempty"`
	RefractiveIndex float64    `json:"refractive_index,omitempty"`
}

// FileSphere places a sphere. An empty Material uses the placeholder.
type FileSphere struct {
	Center   Vec     `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material,omitempty"`
}

// Vec is a point or direction written as [x, y, z]
type Vec [3]float64

func (v Vec) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func vecFrom(v core.Vec3) Vec {
	return Vec{v.X, v.Y, v.Z}
}

// ColorSpec is a linear color written either as [r, g, b] or as a CSS color
// name such as "gold". Named colors are sRGB bytes and are linearized with the
// inverse of the gamma-2 output curve, so they render close to their swatch.
type ColorSpec struct {
	Color core.Color
}

func (c *ColorSpec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		rgba, ok := colornames.Map[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown color name %q", name)
		}
		c.Color = core.NewVec3(linearize(rgba.R), linearize(rgba.G), linearize(rgba.B))
		return nil
	}

	var triple [3]float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("color must be a name or an [r, g, b] array: %w", err)
	}
	c.Color = core.NewVec3(triple[0], triple[1], triple[2])
	return nil
}

func (c ColorSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.Color.X, c.Color.Y, c.Color.Z})
}

func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	return v * v
}

// Load decodes a scene file from r and builds the scene
func Load(r io.Reader) (*Scene, error) {
	var f File
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return f.Build()
}

// FromFile loads the scene file at path
func FromFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if len(cameraOverrides) > 0 {
		s.ApplyCameraOverrides(cameraOverrides[0])
	}
	return s, nil
}

// Build validates the file and constructs the scene it describes
func (f *File) Build() (*Scene, error) {
	cameraConfig := f.Camera.toConfig()
	if cameraConfig.Width <= 0 {
		return nil, fmt.Errorf("camera width must be positive, got %d", cameraConfig.Width)
	}
	if cameraConfig.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", cameraConfig.AspectRatio)
	}
	if cameraConfig.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", cameraConfig.SamplesPerPixel)
	}

	materials := make(map[string]material.Material, len(f.Materials))
	for name, fm := range f.Materials {
		m, err := fm.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	world := geometry.NewHittableList()
	for i, fs := range f.Spheres {
		if fs.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: radius must be non-zero", i)
		}
		var m material.Material
		if fs.Material != "" {
			var ok bool
			if m, ok = materials[fs.Material]; !ok {
				return nil, fmt.Errorf("sphere %d: undefined material %q", i, fs.Material)
			}
		}
		world.Add(geometry.NewSphere(fs.Center.toVec3(), fs.Radius, m))
	}

	return &Scene{
		Name:         f.Name,
		Description:  f.Description,
		World:        world,
		CameraConfig: cameraConfig,
	}, nil
}

func (fm FileMaterial) build() (material.Material, error) {
	albedo := core.NewVec3(0, 0, 0)
	if fm.Albedo != nil {
		albedo = fm.Albedo.Color
	}

	switch fm.Kind {
	case KindLambertian:
		return material.NewLambertian(albedo), nil
	case KindMetal:
		return material.NewMetal(albedo, fm.Fuzz), nil
	case KindDielectric:
		if fm.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("refractive index must be positive, got %g", fm.RefractiveIndex)
		}
		return material.NewDielectric(fm.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("unknown material kind %q", fm.Kind)
	}
}

func (fc FileCamera) toConfig() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	if fc.AspectRatio != nil {
		config.AspectRatio = *fc.AspectRatio
	}
	if fc.Width != nil {
		config.Width = *fc.Width
	}
	if fc.SamplesPerPixel != nil {
		config.SamplesPerPixel = *fc.SamplesPerPixel
	}
	if fc.MaxDepth != nil {
		config.MaxDepth = *fc.MaxDepth
	}
	if fc.VFov != nil {
		config.VFov = *fc.VFov
	}
	if fc.LookFrom != nil {
		config.LookFrom = fc.LookFrom.toVec3()
	}
	if fc.LookAt != nil {
		config.LookAt = fc.LookAt.toVec3()
	}
	if fc.Up != nil {
		config.Up = fc.Up.toVec3()
	}
	if fc.DefocusAngle != nil {
		config.DefocusAngle = *fc.DefocusAngle
	}
	if fc.FocusDistance != nil {
		config.FocusDistance = *fc.FocusDistance
	}
	return config
}

func cameraFrom(config renderer.CameraConfig) FileCamera {
	lookFrom, lookAt, up := vecFrom(config.LookFrom), vecFrom(config.LookAt), vecFrom(config.Up)
	return FileCamera{
		AspectRatio:     &config.AspectRatio,
		Width:           &config.Width,
		SamplesPerPixel: &config.SamplesPerPixel,
		MaxDepth:        &config.MaxDepth,
		VFov:            &config.VFov,
		LookFrom:        &lookFrom,
		LookAt:          &lookAt,
		Up:              &up,
		DefocusAngle:    &config.DefocusAngle,
		FocusDistance:   &config.FocusDistance,
	}
}

// NewFile describes s in scene-file form. Materials are deduplicated by
// identity and named in order of first use. Only spheres with Lambertian,
// Metal or Dielectric materials can be described.
func NewFile(s *Scene) (*File, error) {
	f := &File{
		Name:        s.Name,
		Description: s.Description,
		Camera:      cameraFrom(s.CameraConfig),
		Materials:   make(map[string]FileMaterial),
	}

	names := make(map[material.Material]string)
	for i, object := range s.World.Objects {
		sphere, ok := object.(*geometry.Sphere)
		if !ok {
			return nil, fmt.Errorf("object %d: cannot describe %T", i, object)
		}

		m := material.OrPlaceholder(sphere.Material)
		name, seen := names[m]
		if !seen {
			fm, err := describeMaterial(m)
			if err != nil {
				return nil, fmt.Errorf("object %d: %w", i, err)
			}
			name = fmt.Sprintf("%s-%d", fm.Kind, len(names))
			names[m] = name
			f.Materials[name] = fm
		}

		f.Spheres = append(f.Spheres, FileSphere{
			Center:   vecFrom(sphere.Center),
			Radius:   sphere.Radius,
			Material: name,
		})
	}

	return f, nil
}

func describeMaterial(m material.Material) (FileMaterial, error) {
	switch mat := m.(type) {
	case *material.Lambertian:
		return FileMaterial{Kind: KindLambertian, Albedo: &ColorSpec{Color: mat.Albedo}}, nil
	case *material.Metal:
		return FileMaterial{Kind: KindMetal, Albedo: &ColorSpec{Color: mat.Albedo}, Fuzz: mat.Fuzzness}, nil
	case *material.Dielectric:
		return FileMaterial{Kind: KindDielectric, RefractiveIndex: mat.RefractiveIndex}, nil
	default:
		return FileMaterial{}, fmt.Errorf("cannot describe material %T", m)
	}
}

// Save writes s to w as an indented scene file
func Save(w io.Writer, s *Scene) error {
	f, err := NewFile(s)
	if err != nil {
		return fmt.Errorf("failed to describe scene: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(f); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	return nil
}
