package ir

import (
	"fmt"
	"strings"
)

// Path addresses a zone, a category or a key. Names may be empty, so the
// addressed level is recorded explicitly.
type Path struct {
	Zone     string
	Category string
	Key      string
	Level    Level
}

func ZonePath(z string) Path {
	return Path{Zone: z, Level: ZoneLevel}
}

func CategoryPath(z, c string) Path {
	return Path{Zone: z, Category: c, Level: CategoryLevel}
}

func KeyPath(z, c, k string) Path {
	return Path{Zone: z, Category: c, Key: k, Level: KeyLevel}
}

// Parent returns the path one level up. The parent of a zone path is
// itself.
func (p Path) Parent() Path {
	switch p.Level {
	case KeyLevel:
		return CategoryPath(p.Zone, p.Category)
	case CategoryLevel:
		return ZonePath(p.Zone)
	default:
		return p
	}
}

// Name returns the last component of the path.
func (p Path) Name() string {
	switch p.Level {
	case KeyLevel:
		return p.Key
	case CategoryLevel:
		return p.Category
	default:
		return p.Zone
	}
}

func (p Path) String() string {
	switch p.Level {
	case KeyLevel:
		return p.Zone + "/" + p.Category + "/" + p.Key
	case CategoryLevel:
		return p.Zone + "/" + p.Category
	default:
		return p.Zone
	}
}

// ParsePath parses "zone", "zone/category" or "zone/category/key". '/'
// cannot occur in a pyvoc name since it closes a token.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		return ZonePath(parts[0]), nil
	case 2:
		return CategoryPath(parts[0], parts[1]), nil
	case 3:
		return KeyPath(parts[0], parts[1], parts[2]), nil
	default:
		return Path{}, fmt.Errorf("%w: %q has %d components", ErrBadPath, s, len(parts))
	}
}
