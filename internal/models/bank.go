package models

type Bank struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city" yaml:"city"`
	LogoURL string `json:"logoUrl" yaml:"logoUrl"`
}
