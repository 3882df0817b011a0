package entity

type NavItem struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type FooterLink struct {
	Name     string `yaml:"name"`
	Href     string `yaml:"href"`
	External bool   `yaml:"external"`
}

type FooterSection struct {
	Title string       `yaml:"title"`
	Links []FooterLink `yaml:"links"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
	Rating int    `yaml:"rating"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type ChartBar struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
}

type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type ServiceOffering struct {
	Title            string   `yaml:"title"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	SubServices      []string `yaml:"sub_services"`
	Badge            string   `yaml:"badge"`
}

type SubjectOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type ComparisonRow struct {
	Key   FeatureKey `yaml:"key"`
	Label string     `yaml:"label"`
}
