package models

import (
	"time"
)

type Branch struct {
	ID         string          `json:"id" yaml:"id"`
	BankID     string          `json:"bankId" yaml:"bankId"`
	Name       string          `json:"name" yaml:"name"`
	Address    string          `json:"address" yaml:"address"`
	Lat        float64         `json:"lat" yaml:"lat"`
	Lng        float64         `json:"lng" yaml:"lng"`
	IsATM      bool            `json:"isAtm" yaml:"isAtm"`
	Status     LiquidityStatus `json:"status" yaml:"status"`
	LastUpdate time.Time       `json:"lastUpdate" yaml:"-"`
	CrowdLevel int             `json:"crowdLevel" yaml:"crowdLevel"` // 0-100
}
