package domain_test

import (
	"strings"
	"testing"

	"project-request-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionExcerpt(t *testing.T) {
	t.Run("Should keep a 100 character description unabridged", func(t *testing.T) {
		req := &domain.ProjectRequest{Description: strings.Repeat("a", 100)}
		assert.Equal(t, strings.Repeat("a", 100), req.DescriptionExcerpt())
	})

	t.Run("Should truncate a 101 character description and add an ellipsis", func(t *testing.T) {
		req := &domain.ProjectRequest{Description: strings.Repeat("a", 100) + "b"}
		assert.Equal(t, strings.Repeat("a", 100)+"...", req.DescriptionExcerpt())
	})

	t.Run("Should count characters, not bytes", func(t *testing.T) {
		req := &domain.ProjectRequest{Description: strings.Repeat("é", 100)}
		assert.Equal(t, strings.Repeat("é", 100), req.DescriptionExcerpt())
	})
}

func TestOptionalFieldDefaults(t *testing.T) {
	req := &domain.ProjectRequest{}
	assert.Equal(t, "Not provided", req.PhoneOrDefault())
	assert.Equal(t, "Not specified", req.DeadlineOr(domain.DeadlineNotSpecified))
	assert.Equal(t, "To be discussed", req.DeadlineOr(domain.DeadlineToDiscuss))

	req.Phone = "+234"
	req.Deadline = "2026-12-31"
	assert.Equal(t, "+234", req.PhoneOrDefault())
	assert.Equal(t, "2026-12-31", req.DeadlineOr(domain.DeadlineToDiscuss))
}

func TestMissingFields(t *testing.T) {
	req := &domain.ProjectRequest{Name: "  ", Email: "ada@x.com", Phone: "", Description: "x"}
	assert.Equal(t, []string{"name", "projectType"}, req.MissingFields())

	req.Name = "Ada"
	req.ProjectType = "msc"
	assert.Empty(t, req.MissingFields())
}

func TestNormalize(t *testing.T) {
	req := &domain.ProjectRequest{Name: " Ada ", Email: "\tada@x.com\n", Deadline: " "}
	req.Normalize()
	assert.Equal(t, "Ada", req.Name)
	assert.Equal(t, "ada@x.com", req.Email)
	assert.Equal(t, "", req.Deadline)
}

func TestProjectTypeOptionLabel(t *testing.T) {
	types := domain.DefaultProjectTypes()
	assert.Equal(t, "BSc Project (₦75,000)", types[0].OptionLabel())
	assert.Equal(t, "Other (Custom Quote)", types[3].OptionLabel())
	assert.Equal(t, "Consulting", domain.ProjectType{Value: "consulting", Label: "Consulting"}.OptionLabel())
}
