package config

type Config struct {
	File    string `mapstructure:"file" yaml:"file" json:"file"`
	LogFile string `mapstructure:"log_file" yaml:"log_file" json:"log_file"`
}
