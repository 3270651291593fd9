package model

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes a grid as a [width, height] sequence. Cell contents are not persisted.
func (g *Grid) MarshalYAML() (interface{}, error) {
	return []int{g.GetWidth(), g.GetHeight()}, nil
}

// UnmarshalYAML decodes a [width, height] sequence into an all-dead grid of that size
func (g *Grid) UnmarshalYAML(value *yaml.Node) error {
	var dims []int
	if err := value.Decode(&dims); err != nil {
		return errors.Wrap(err, "[UnmarshalYAML] grid must be a [width, height] sequence")
	}
	if len(dims) != 2 {
		return errors.Errorf("[UnmarshalYAML] expected 2 dimensions, got %d", len(dims))
	}
	if dims[0] <= 0 || dims[1] <= 0 {
		return errors.Errorf("[UnmarshalYAML] dimensions must be positive, got %dx%d", dims[0], dims[1])
	}
	g.resize(dims[0], dims[1])
	return nil
}
