// Package arch defines the cloud architecture data model: components,
// directed connections between them, and the fixed reference topology
// rendered by the diagram generators.
package arch

// Category classifies a component for coloring and legends.
type Category string

const (
	CategoryUser    Category = "user"
	CategoryWeb     Category = "web"
	CategoryApp     Category = "app"
	CategoryDB      Category = "db"
	CategoryCache   Category = "cache"
	CategoryStorage Category = "storage"
	CategoryNetwork Category = "network"
)

// Categories lists all categories in legend order.
var Categories = []Category{
	CategoryUser,
	CategoryWeb,
	CategoryApp,
	CategoryDB,
	CategoryCache,
	CategoryStorage,
	CategoryNetwork,
}

// categoryColors is the single source of truth for display colors,
// shared by every render backend.
var categoryColors = map[Category]string{
	CategoryUser:    "#4CAF50",
	CategoryWeb:     "#2196F3",
	CategoryApp:     "#FF9800",
	CategoryDB:      "#9C27B0",
	CategoryCache:   "#F44336",
	CategoryStorage: "#795548",
	CategoryNetwork: "#607D8B",
}

// categoryTitles maps a category to its legend display name.
var categoryTitles = map[Category]string{
	CategoryUser:    "User",
	CategoryWeb:     "Web",
	CategoryApp:     "App",
	CategoryDB:      "Db",
	CategoryCache:   "Cache",
	CategoryStorage: "Storage",
	CategoryNetwork: "Network",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the display hex color (with leading '#') for the category.
func (c Category) Color() string {
	return categoryColors[c]
}

// Title returns the legend display name for the category.
func (c Category) Title() string {
	return categoryTitles[c]
}

// Rect is a component's placement in the static diagram, in canvas
// units with the origin at the bottom-left.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Point is a component's placement in the interactive graph, in grid
// units with the origin at the bottom-left.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Component is a labeled architectural element placed on both diagrams.
type Component struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Category Category `json:"category" yaml:"category"`
	Box      Rect     `json:"box" yaml:"box"`
	Pos      Point    `json:"pos" yaml:"pos"`
	Marker   int      `json:"marker" yaml:"marker"`
	Role     string   `json:"role" yaml:"role"`
}

// Connection is a directed link from one component to another.
type Connection struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Topology is the complete component/connection model consumed by the
// render backends. It is defined once as literal data and never
// mutated at runtime.
type Topology struct {
	Name        string       `json:"name" yaml:"name"`
	Components  []Component  `json:"components" yaml:"components"`
	Connections []Connection `json:"connections" yaml:"connections"`
}

// Lookup returns the component with the given ID.
func (t Topology) Lookup(id string) (Component, bool) {
	for _, c := range t.Components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}
