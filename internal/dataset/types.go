// Package dataset loads a published bus-network file (stops and route
// stop sequences) and imports it into the store.
package dataset

// Network is the top-level document of a network YAML file.
type Network struct {
	Version string  `yaml:"version"`
	Stops   []Stop  `yaml:"stops"`
	Routes  []Route `yaml:"routes"`
}

type Stop struct {
	ID       string  `yaml:"id" validate:"required"`
	NameEN   string  `yaml:"name_en" validate:"required"`
	NameMM   string  `yaml:"name_mm"`
	Township string  `yaml:"township"`
	Lat      float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon      float64 `yaml:"lon" validate:"gte=-180,lte=180"`
}

type Route struct {
	ID       string   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name"`
	Color    string   `yaml:"color"`
	Operator string   `yaml:"operator"`
	Stops    []string `yaml:"stops" validate:"required,min=2"`
}
