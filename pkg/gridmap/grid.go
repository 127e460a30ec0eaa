// pkg/gridmap/grid.go
package gridmap

import (
	"candy-defense/internal/config"
	"errors"
	"fmt"
	"math"
)

// Коды клеток в исходных данных карты.
const (
	CodeEmpty = 0
	CodePath  = 1
	CodeTower = 2
	CodeStart = 3
	CodeEnd   = 4
)

// TileState is what placement logic sees when it asks about a cell.
type TileState int

const (
	TileEmpty TileState = iota
	TilePath
	TileOccupied
	TileOutOfBounds
)

func (s TileState) String() string {
	switch s {
	case TileEmpty:
		return "empty"
	case TilePath:
		return "path"
	case TileOccupied:
		return "occupied"
	default:
		return "out-of-bounds"
	}
}

var (
	ErrUnknownMap  = errors.New("gridmap: unknown map")
	ErrNoStartTile = errors.New("gridmap: no start tile")
	ErrEmptyPath   = errors.New("gridmap: empty path")
	ErrDeadEnd     = errors.New("gridmap: path does not reach the end tile")
	ErrOutOfBounds = errors.New("gridmap: coordinates out of bounds")
)

// Waypoint is a screen-space point (top-left corner of a cell).
type Waypoint struct {
	X, Y float64
}

// Cell is a grid coordinate: column X, row Y.
type Cell struct {
	X, Y int
}

// Map is a loaded, playable map. The walkable path is computed once at load.
type Map struct {
	Name     string
	tiles    [][]int
	original [][]int
	path     []Waypoint
	start    Waypoint
}

// Load builds the named built-in map.
func Load(name string) (*Map, error) {
	data, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	return New(name, data)
}

// New builds a map from raw tile codes ([row][col]). It fails if the grid has
// no start tile or the path from it cannot be walked to the end tile.
func New(name string, tiles [][]int) (*Map, error) {
	m := &Map{
		Name:     name,
		tiles:    cloneTiles(tiles),
		original: cloneTiles(tiles),
	}
	startCell, ok := m.findCode(CodeStart)
	if !ok {
		return nil, fmt.Errorf("map %q: %w", name, ErrNoStartTile)
	}
	cells, err := m.walkPath(startCell)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", name, err)
	}
	m.start = CellToScreen(startCell)
	m.path = make([]Waypoint, len(cells))
	for i, c := range cells {
		m.path[i] = CellToScreen(c)
	}
	return m, nil
}

// Path returns a copy of the waypoint list so callers can consume it freely.
func (m *Map) Path() []Waypoint {
	out := make([]Waypoint, len(m.path))
	copy(out, m.path)
	return out
}

// StartPosition is the spawn point of every wave enemy.
func (m *Map) StartPosition() Waypoint {
	return m.start
}

// Width and Height are in cells.
func (m *Map) Width() int {
	if len(m.tiles) == 0 {
		return 0
	}
	return len(m.tiles[0])
}

func (m *Map) Height() int {
	return len(m.tiles)
}

// Code returns the raw tile code, or -1 out of bounds.
func (m *Map) Code(x, y int) int {
	if !m.inBounds(x, y) {
		return -1
	}
	return m.tiles[y][x]
}

// TileState classifies a cell for placement.
func (m *Map) TileState(x, y int) TileState {
	if !m.inBounds(x, y) {
		return TileOutOfBounds
	}
	switch m.tiles[y][x] {
	case CodePath, CodeStart, CodeEnd:
		return TilePath
	case CodeTower:
		return TileOccupied
	default:
		return TileEmpty
	}
}

// SetTile overwrites a cell with a raw tile code.
func (m *Map) SetTile(code, x, y int) error {
	if !m.inBounds(x, y) {
		return fmt.Errorf("set tile (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	m.tiles[y][x] = code
	return nil
}

// Occupy marks an empty cell as holding a tower.
func (m *Map) Occupy(x, y int) bool {
	if m.TileState(x, y) != TileEmpty {
		return false
	}
	m.tiles[y][x] = CodeTower
	return true
}

// Free returns a tower cell to empty.
func (m *Map) Free(x, y int) bool {
	if m.TileState(x, y) != TileOccupied {
		return false
	}
	m.tiles[y][x] = CodeEmpty
	return true
}

// Reset restores the grid as it was loaded, removing every tower.
func (m *Map) Reset() {
	m.tiles = cloneTiles(m.original)
}

func (m *Map) inBounds(x, y int) bool {
	return y >= 0 && y < len(m.tiles) && x >= 0 && x < len(m.tiles[y])
}

func (m *Map) findCode(code int) (Cell, bool) {
	for y, row := range m.tiles {
		for x, v := range row {
			if v == code {
				return Cell{X: x, Y: y}, true
			}
		}
	}
	return Cell{}, false
}

// up, down, left, right — the first valid neighbour wins
var walkDirections = []Cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// walkPath follows path tiles from the start without revisiting any cell and
// stops on the end tile.
func (m *Map) walkPath(start Cell) ([]Cell, error) {
	path := []Cell{start}
	visited := map[Cell]bool{start: true}
	current := start

	for m.tiles[current.Y][current.X] != CodeEnd {
		next, found := Cell{}, false
		for _, d := range walkDirections {
			n := Cell{X: current.X + d.X, Y: current.Y + d.Y}
			if !m.inBounds(n.X, n.Y) || visited[n] {
				continue
			}
			if code := m.tiles[n.Y][n.X]; code == CodePath || code == CodeEnd {
				next, found = n, true
				break
			}
		}
		if !found {
			if len(path) == 1 {
				return nil, ErrEmptyPath
			}
			return nil, fmt.Errorf("%w: stuck at (%d,%d)", ErrDeadEnd, current.X, current.Y)
		}
		visited[next] = true
		path = append(path, next)
		current = next
	}
	return path, nil
}

// CellToScreen returns the top-left pixel of a cell.
func CellToScreen(c Cell) Waypoint {
	return Waypoint{
		X: float64(c.X * config.GridCellSize),
		Y: float64(c.Y*config.GridCellSize + config.TopbarHeight),
	}
}

// ScreenToCell maps a pixel to the cell containing it. Pixels above the field
// map to negative rows.
func ScreenToCell(x, y float64) Cell {
	return Cell{
		X: floorDiv(int(math.Floor(x)), config.GridCellSize),
		Y: floorDiv(int(math.Floor(y))-config.TopbarHeight, config.GridCellSize),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func cloneTiles(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, row := range src {
		out[i] = append([]int(nil), row...)
	}
	return out
}
