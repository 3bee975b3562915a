package model

// Window describes the title handed to a presenter: the base title,
// the serialized record appended to it, and the resulting display title.
type Window struct {
	Base   string `yaml:"base"   json:"base"`
	Record string `yaml:"record" json:"record"`
	Title  string `yaml:"title"  json:"title"`
}
