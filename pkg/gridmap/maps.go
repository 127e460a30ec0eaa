// pkg/gridmap/maps.go
package gridmap

// Builtin holds the shipped maps, [row][col], codes as in grid.go.
var Builtin = map[string][][]int{
	"Meadow": {
		{3, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0, 0, 1, 1, 1, 0},
		{0, 1, 0, 0, 0, 0, 1, 0, 1, 0},
		{0, 1, 0, 0, 0, 0, 1, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 4},
	},
	"Switchback": {
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{3, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 4},
	},
}
