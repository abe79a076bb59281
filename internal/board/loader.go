package board

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gridkit/internal/geom"
	"github.com/cory-johannsen/gridkit/internal/grid"
)

// Start modes.
const (
	StartTopLeft  = "top-left"
	StartExplicit = "explicit"
)

// yamlBoardFile is the top-level YAML structure for board files.
type yamlBoardFile struct {
	Board yamlBoard `yaml:"board"`
}

// yamlBoard is the YAML representation of a board. Layout rows are a list so
// that leading spaces survive YAML block scalar indentation rules.
type yamlBoard struct {
	Name       string            `yaml:"name"`
	Legend     map[string]string `yaml:"legend"`
	Layout     []string          `yaml:"layout"`
	Route      string            `yaml:"route"`
	Start      string            `yaml:"start"`
	StartPoint yamlPoint         `yaml:"start_point"`
	Facing     string            `yaml:"facing"`
}

type yamlPoint struct {
	X int64 `yaml:"x"`
	Y int64 `yaml:"y"`
}

// LoadBoardFromFile reads and validates a single board YAML file.
//
// Precondition: path must point to a valid YAML board file.
// Postcondition: Returns a validated Board or a non-nil error.
func LoadBoardFromFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file %s: %w", path, err)
	}
	return LoadBoardFromBytes(data)
}

// LoadBoardFromBytes parses and validates a board from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the board schema.
// Postcondition: Returns a validated Board or a non-nil error.
func LoadBoardFromBytes(data []byte) (*Board, error) {
	var file yamlBoardFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing board YAML: %w", err)
	}
	b, err := convertYAMLBoard(file.Board)
	if err != nil {
		return nil, fmt.Errorf("validating board: %w", err)
	}
	return b, nil
}

// convertYAMLBoard validates the parsed YAML and converts it into a Board.
func convertYAMLBoard(yb yamlBoard) (*Board, error) {
	if yb.Name == "" {
		return nil, fmt.Errorf("board name must not be empty")
	}
	if len(yb.Legend) == 0 {
		return nil, fmt.Errorf("board %q: legend must not be empty", yb.Name)
	}
	if len(yb.Layout) == 0 {
		return nil, fmt.Errorf("board %q: layout must not be empty", yb.Name)
	}

	legend := make(map[rune]Tile, len(yb.Legend))
	for key, kind := range yb.Legend {
		if utf8.RuneCountInString(key) != 1 || key == " " {
			return nil, fmt.Errorf("board %q: legend key %q must be a single non-space character", yb.Name, key)
		}
		tile, err := ParseTile(kind)
		if err != nil {
			return nil, fmt.Errorf("board %q: legend %q: %w", yb.Name, key, err)
		}
		r, _ := utf8.DecodeRuneInString(key)
		legend[r] = tile
	}

	tiles, err := grid.Parse(strings.NewReader(strings.Join(yb.Layout, "\n")), func(r rune) (Tile, bool, error) {
		if r == ' ' {
			return 0, false, nil
		}
		t, ok := legend[r]
		if !ok {
			return 0, false, fmt.Errorf("not in legend")
		}
		return t, true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("board %q: layout: %w", yb.Name, err)
	}

	route, err := ParseRoute(yb.Route)
	if err != nil {
		return nil, fmt.Errorf("board %q: %w", yb.Name, err)
	}

	facing := geom.East
	if yb.Facing != "" {
		facing, err = geom.ParseDirection(yb.Facing)
		if err != nil {
			return nil, fmt.Errorf("board %q: facing: %w", yb.Name, err)
		}
		if !facing.IsCardinal() {
			return nil, fmt.Errorf("board %q: facing %s must be cardinal", yb.Name, facing)
		}
	}

	b := &Board{
		Name:   yb.Name,
		Tiles:  tiles,
		Route:  route,
		Facing: facing,
	}

	switch yb.Start {
	case "", StartTopLeft:
		start, ok := b.TopLeft()
		if !ok {
			return nil, fmt.Errorf("board %q: layout has no open tile to start on", yb.Name)
		}
		b.Start = start
	case StartExplicit:
		b.Start = geom.Point{X: yb.StartPoint.X, Y: yb.StartPoint.Y}
		if t, ok := tiles.Get(b.Start); !ok || t != Open {
			return nil, fmt.Errorf("board %q: start_point %s is not an open tile", yb.Name, b.Start)
		}
	default:
		return nil, fmt.Errorf("board %q: start must be one of [%s, %s], got %q", yb.Name, StartTopLeft, StartExplicit, yb.Start)
	}

	return b, nil
}

// LoadBoardsFromDir loads all YAML files in a directory as boards.
//
// Precondition: dir must be a valid directory path.
// Postcondition: Returns all validated boards or the first error encountered.
func LoadBoardsFromDir(dir string) ([]*Board, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading board directory %s: %w", dir, err)
	}

	var boards []*Board
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		b, err := LoadBoardFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading board from %s: %w", name, err)
		}
		boards = append(boards, b)
	}

	if len(boards) == 0 {
		return nil, fmt.Errorf("no board files found in %s", dir)
	}
	return boards, nil
}
