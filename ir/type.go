package ir

import "fmt"

// Level identifies one of the three nesting levels of a document.
type Level int

const (
	ZoneLevel Level = iota + 1
	CategoryLevel
	KeyLevel
)

func (l Level) String() string {
	s, ok := map[Level]string{
		ZoneLevel:     "Zone",
		CategoryLevel: "Category",
		KeyLevel:      "Key",
	}[l]
	if ok {
		return s
	}
	return "<unknown level>"
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(d []byte) error {
	ll, ok := map[string]Level{
		"Zone":     ZoneLevel,
		"Category": CategoryLevel,
		"Key":      KeyLevel,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized level %q", d)
	}
	*l = ll
	return nil
}

func Levels() []Level {
	return []Level{
		ZoneLevel,
		CategoryLevel,
		KeyLevel,
	}
}
