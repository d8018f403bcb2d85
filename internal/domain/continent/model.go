package continent

import (
	"fmt"
	"strings"
)

// Continent is the top of the geography tree; every nation belongs to one.
type Continent struct {
	ID   int64
	Name string
}

func (c Continent) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("continent name is required")
	}
	return nil
}
