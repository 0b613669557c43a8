package world

import "fmt"

// TileType identifies what occupies one grid cell.
type TileType uint8

const (
	Air TileType = iota
	Grass
	Dirt
	Stone
	Coal
	Iron
	Wood
	Leaf

	tileTypeCount
)

var tileNames = [tileTypeCount]string{
	Air:   "air",
	Grass: "grass",
	Dirt:  "dirt",
	Stone: "stone",
	Coal:  "coal",
	Iron:  "iron",
	Wood:  "wood",
	Leaf:  "leaf",
}

// TileTypes lists every tile type in declaration order.
func TileTypes() []TileType {
	out := make([]TileType, 0, tileTypeCount)
	for t := Air; t < tileTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// IsSolid reports whether t blocks movement. Air and leaves do not.
func IsSolid(t TileType) bool {
	return t.Solid()
}

func (t TileType) Solid() bool {
	return t != Air && t != Leaf && t.Valid()
}

func (t TileType) Valid() bool {
	return t < tileTypeCount
}

func (t TileType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
	return tileNames[t]
}

func (t TileType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("world: invalid tile type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TileType) UnmarshalText(b []byte) error {
	parsed, err := ParseTileType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTileType maps a config name to its tile type. "leaves" is accepted
// as an alias for leaf.
func ParseTileType(s string) (TileType, error) {
	if s == "leaves" {
		return Leaf, nil
	}
	for t, name := range tileNames {
		if name == s {
			return TileType(t), nil
		}
	}
	return Air, fmt.Errorf("world: unknown tile type %q", s)
}
