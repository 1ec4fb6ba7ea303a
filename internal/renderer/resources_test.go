package renderer_test

import (
	"reflect"
	"testing"

	"github.com/kjkrol/goquad/internal/renderer"
)

type fakeResource struct {
	name     string
	released *[]string
}

func (f *fakeResource) Release() {
	*f.released = append(*f.released, f.name)
}

func TestResources_ReleaseAllReverseOrder(t *testing.T) {
	var released []string
	var res renderer.Resources

	for _, name := range []string{"mesh", "texture", "program"} {
		got := renderer.Track(&res, &fakeResource{name: name, released: &released})
		if got.name != name {
			t.Fatalf("Track returned %q, want %q", got.name, name)
		}
	}
	if res.Len() != 3 {
		t.Fatalf("tracked %d resources, want 3", res.Len())
	}

	res.ReleaseAll()
	if want := []string{"program", "texture", "mesh"}; !reflect.DeepEqual(released, want) {
		t.Fatalf("release order = %v, want %v", released, want)
	}

	res.ReleaseAll()
	if len(released) != 3 || res.Len() != 0 {
		t.Fatalf("second ReleaseAll released again: %v", released)
	}
}

func TestZeroResourcesReleaseWithoutContext(t *testing.T) {
	// Zero-valued and nil resources hold no GL names and must not call into GL.
	var (
		tex  renderer.Texture
		buf  renderer.Buffer
		vao  renderer.VertexArray
		mesh *renderer.Mesh
		prog *renderer.Program
	)
	tex.Release()
	buf.Release()
	vao.Release()
	mesh.Release()
	prog.Release()

	if tex.Valid() {
		t.Fatal("zero texture reports valid")
	}
}
