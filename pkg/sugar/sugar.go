package sugar

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-imscope/imscope/pkg/im"
)

// minBackendVersion is the oldest collaborating-library release the catalogue
// is valid against: 1.81 introduced BeginListBox/EndListBox.
const minBackendVersion = "v1.81.0"

// UI sequences guarded calls into a single backend. It holds no state of its
// own beyond the binding; all nesting state lives in the backend's stack.
type UI struct {
	b im.Backend
}

// New binds a backend after checking that the release it reports is supported.
func New(b im.Backend) (*UI, error) {
	raw := strings.TrimSpace(b.Version())
	if raw == "" {
		return nil, fmt.Errorf("sugar: backend reports an empty version")
	}
	// Bindings commonly append a suffix such as "1.90.4 WIP"; the release
	// number is the first field.
	v := "v" + strings.Fields(raw)[0]
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("sugar: backend version %q is not a valid release number", raw)
	}
	if semver.Compare(v, minBackendVersion) < 0 {
		return nil, fmt.Errorf("sugar: backend version %s is older than the minimum supported %s",
			v, minBackendVersion)
	}
	return &UI{b: b}, nil
}

// MustNew is New for backends known to be supported; it panics on error.
func MustNew(b im.Backend) *UI {
	u, err := New(b)
	if err != nil {
		panic(err)
	}
	return u
}

// Backend returns the bound backend for direct widget calls between guarded
// regions.
func (u *UI) Backend() im.Backend {
	return u.b
}

// popStyleColor and popStyleVar fix the pop count to one entry so style pushes
// fit the zero-argument release shape.

func (u *UI) popStyleColor() { u.b.PopStyleColor(1) }

func (u *UI) popStyleVar() { u.b.PopStyleVar(1) }

func runBody(body func()) {
	if body != nil {
		body()
	}
}
