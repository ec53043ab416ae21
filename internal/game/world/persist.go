package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal serialises the campaign to YAML.
//
// Precondition: c must satisfy Validate.
// Postcondition: the returned bytes round-trip through LoadCampaignFromBytes.
func (c *Campaign) Marshal() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating campaign: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding campaign: %w", err)
	}
	return data, nil
}

// SaveToFile writes the campaign to path as YAML, overwriting any existing file.
//
// Precondition: c must satisfy Validate; path's directory must exist.
func (c *Campaign) SaveToFile(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing campaign file %s: %w", path, err)
	}
	return nil
}

// LoadCampaignFromBytes parses and validates a campaign from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the campaign schema.
// Postcondition: returns a validated Campaign or a non-nil error.
func LoadCampaignFromBytes(data []byte) (*Campaign, error) {
	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing campaign YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating campaign: %w", err)
	}
	return &c, nil
}

// LoadCampaignFromFile reads and validates a campaign YAML file.
//
// Precondition: path must point to a valid YAML campaign file.
// Postcondition: returns a validated Campaign or a non-nil error.
func LoadCampaignFromFile(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading campaign file %s: %w", path, err)
	}
	return LoadCampaignFromBytes(data)
}
