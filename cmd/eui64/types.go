package main

type YamlConfig struct {
	Ipv6   bool              `yaml:"ipv6"`
	Prefix string            `yaml:"prefix"`
	Hosts  map[string]string `yaml:"hosts"`
}

type Mode int

const (
	ModeUndefined Mode = iota
	ModeValidate
	ModeSplit
	ModeConvert
	ModeLinkLocal
	ModeBatch
)
