package config

// SiteFile represents the structure of the site.yaml configuration file.
type SiteFile struct {
	Config  map[string]any       `yaml:"config"`
	Items   map[string]ItemDTO   `yaml:"items"`
	Layouts map[string]LayoutDTO `yaml:"layouts"`
	Code    string               `yaml:"code"`
}

// ItemDTO represents one item definition.
type ItemDTO struct {
	Source     string            `yaml:"source"`
	Content    string            `yaml:"content"`
	Attributes map[string]any    `yaml:"attributes"`
	Reps       map[string]RepDTO `yaml:"reps"`
}

// RepDTO represents one representation definition.
type RepDTO struct {
	Actions []ActionDTO `yaml:"actions"`
}

// LayoutDTO represents one layout definition.
type LayoutDTO struct {
	Source     string         `yaml:"source"`
	Content    string         `yaml:"content"`
	Attributes map[string]any `yaml:"attributes"`
	Actions    []ActionDTO    `yaml:"actions"`
}

// ActionDTO represents one filter or snapshot action.
type ActionDTO struct {
	Filter    string         `yaml:"filter"`
	Arguments map[string]any `yaml:"arguments"`
	Snapshot  string         `yaml:"snapshot"`
	Path      string         `yaml:"path"`
}
