package cli

import "okc/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers     int
	FixturePath string
	NameFilter  string
	TestFilter  string
	ShowCases   bool
	FailFast    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:     f.Workers,
		FixturePath: f.FixturePath,
		NameFilter:  f.NameFilter,
		TestFilter:  f.TestFilter,
		ShowCases:   f.ShowCases,
		FailFast:    f.FailFast,
	}
}
