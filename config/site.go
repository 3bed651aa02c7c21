package config

import (
	"fmt"

	"project-request-backend/internal/domain"

	"github.com/spf13/viper"
)

// Site holds the editable copy shown by the form and the confirmation email.
type Site struct {
	ProjectTypes []domain.ProjectType `mapstructure:"project_types"`
	// Bullets of the confirmation email's "What happens next?" box
	NextSteps []string `mapstructure:"next_steps"`
	// Bullets of the form's "What's Next?" panel after a successful submit
	FormNextSteps []string `mapstructure:"form_next_steps"`
}

// DefaultSite returns the built-in site copy.
func DefaultSite() *Site {
	return &Site{
		ProjectTypes: domain.DefaultProjectTypes(),
		NextSteps: []string{
			"We'll review your project requirements",
			"You'll receive a detailed quote within 24 hours",
			"Once approved, we'll begin work immediately",
		},
		FormNextSteps: []string{
			"Check your email for confirmation details",
			"We'll send you a detailed quote within 24 hours",
			"Our team will contact you to discuss project specifics",
		},
	}
}

// LoadSite reads a YAML site file. An empty path returns DefaultSite; keys the
// file leaves out keep their defaults.
func LoadSite(path string) (*Site, error) {
	site := DefaultSite()
	if path == "" {
		return site, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", path, err)
	}

	loaded := &Site{}
	if err := v.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to decode site config %s: %w", path, err)
	}

	if len(loaded.ProjectTypes) > 0 {
		for i, pt := range loaded.ProjectTypes {
			if pt.Value == "" || pt.Label == "" {
				return nil, fmt.Errorf("site config %s: project_types[%d] needs a value and a label", path, i)
			}
		}
		site.ProjectTypes = loaded.ProjectTypes
	}
	if len(loaded.NextSteps) > 0 {
		site.NextSteps = loaded.NextSteps
	}
	if len(loaded.FormNextSteps) > 0 {
		site.FormNextSteps = loaded.FormNextSteps
	}
	return site, nil
}
