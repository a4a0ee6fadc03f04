package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dalili-app/dalili-backend/internal/models"
)

// Seed is the boot-time dataset. It can come from a YAML file or from
// the built-in demo data covering the major Libyan banks.
type Seed struct {
	Banks    []seedBank   `yaml:"banks"`
	Branches []seedBranch `yaml:"branches"`
}

type seedBank struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	City    string `yaml:"city"`
	LogoURL string `yaml:"logoUrl"`
}

type seedBranch struct {
	ID         string  `yaml:"id"`
	BankID     string  `yaml:"bankId"`
	Name       string  `yaml:"name"`
	Address    string  `yaml:"address"`
	Lat        float64 `yaml:"lat"`
	Lng        float64 `yaml:"lng"`
	IsATM      bool    `yaml:"isAtm"`
	Status     string  `yaml:"status"`
	CrowdLevel int     `yaml:"crowdLevel"`
	// AgeMinutes backdates LastUpdate relative to boot time.
	AgeMinutes int `yaml:"ageMinutes"`
}

// LoadSeedFile parses a YAML seed file.
func LoadSeedFile(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// DefaultSeed returns the built-in demo dataset.
func DefaultSeed() *Seed {
	return &Seed{
		Banks: []seedBank{
			{ID: "1", Name: "مصرف الجمهورية", City: "Tripoli", LogoURL: "https://picsum.photos/seed/gumhouria/200"},
			{ID: "2", Name: "مصرف الوحدة", City: "Benghazi", LogoURL: "https://picsum.photos/seed/wahda/200"},
			{ID: "3", Name: "مصرف الصحارى", City: "Tripoli", LogoURL: "https://picsum.photos/seed/sahara/200"},
			{ID: "4", Name: "المصرف التجاري الوطني", City: "Misrata", LogoURL: "https://picsum.photos/seed/ncb/200"},
			{ID: "5", Name: "مصرف الأمان", City: "Tripoli", LogoURL: "https://picsum.photos/seed/aman/200"},
			{ID: "6", Name: "مصرف شمال أفريقيا", City: "Tripoli", LogoURL: "https://picsum.photos/seed/nab/200"},
		},
		Branches: []seedBranch{
			{ID: "b1", BankID: "1", Name: "فرع الميدان", Address: "ميدان الشهداء، طرابلس", Lat: 32.8872, Lng: 13.1913, Status: "AVAILABLE", CrowdLevel: 30},
			{ID: "b2", BankID: "1", Name: "صراف آلي - شارع عمر المختار", Address: "شارع عمر المختار، طرابلس", Lat: 32.8850, Lng: 13.1850, IsATM: true, Status: "CROWDED", CrowdLevel: 85, AgeMinutes: 30},
			{ID: "b3", BankID: "2", Name: "فرع بنغازي الرئيسي", Address: "شارع جمال عبد الناصر، بنغازي", Lat: 32.1194, Lng: 20.0868, Status: "EMPTY", CrowdLevel: 10, AgeMinutes: 120},
			{ID: "b4", BankID: "3", Name: "فرع حي الأندلس", Address: "حي الأندلس، طرابلس", Lat: 32.8680, Lng: 13.1200, Status: "AVAILABLE", CrowdLevel: 45},
		},
	}
}

// Apply loads the seed into the stores. Branch bankId references are
// validated so a bad seed file fails loudly at boot instead of rendering
// orphan markers.
func (s *Seed) Apply(ctx context.Context, banks *bankStore, branches *branchStore, now time.Time) error {
	known := make(map[string]bool, len(s.Banks))

	for _, sb := range s.Banks {
		if sb.ID == "" || sb.Name == "" {
			return fmt.Errorf("seed bank missing id or name: %+v", sb)
		}
		if err := banks.Create(ctx, &models.Bank{
			ID:      sb.ID,
			Name:    sb.Name,
			City:    sb.City,
			LogoURL: sb.LogoURL,
		}); err != nil {
			return err
		}
		known[sb.ID] = true
	}

	for _, sb := range s.Branches {
		if !known[sb.BankID] {
			return fmt.Errorf("seed branch %s references unknown bank %s", sb.ID, sb.BankID)
		}
		status, _ := models.ParseStatus(sb.Status)
		if err := branches.Create(ctx, &models.Branch{
			ID:         sb.ID,
			BankID:     sb.BankID,
			Name:       sb.Name,
			Address:    sb.Address,
			Lat:        sb.Lat,
			Lng:        sb.Lng,
			IsATM:      sb.IsATM,
			Status:     status,
			CrowdLevel: clampCrowd(sb.CrowdLevel),
			LastUpdate: now.Add(-time.Duration(sb.AgeMinutes) * time.Minute),
		}); err != nil {
			return err
		}
	}

	return nil
}

func clampCrowd(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
