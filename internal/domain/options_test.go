package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTierPolicy(t *testing.T) {
	tests := []struct {
		name string
		opts PDFOptions
		want PDFOptions
	}{
		{
			name: "free tier forces draft watermark and attribution",
			opts: PDFOptions{
				FormatterOptions: FormatterOptions{ShowDraft: false, WhiteLabel: true},
				UserTier:         UserTierFree,
			},
			want: PDFOptions{
				FormatterOptions: FormatterOptions{ShowDraft: true, WhiteLabel: false},
				UserTier:         UserTierFree,
			},
		},
		{
			name: "basic tier keeps attribution but may drop watermark",
			opts: PDFOptions{
				FormatterOptions: FormatterOptions{ShowDraft: false, WhiteLabel: true},
				UserTier:         UserTierBasic,
			},
			want: PDFOptions{
				FormatterOptions: FormatterOptions{ShowDraft: false, WhiteLabel: false},
				UserTier:         UserTierBasic,
			},
		},
		{
			name: "premium tier untouched",
			opts: PDFOptions{
				FormatterOptions: FormatterOptions{ShowDraft: false, WhiteLabel: true},
				UserTier:         UserTierPremium,
			},
			want: PDFOptions{
				FormatterOptions: FormatterOptions{ShowDraft: false, WhiteLabel: true},
				UserTier:         UserTierPremium,
			},
		},
		{
			name: "unknown tier treated as free",
			opts: PDFOptions{
				FormatterOptions: FormatterOptions{WhiteLabel: true},
				UserTier:         UserTier("platinum"),
			},
			want: PDFOptions{
				FormatterOptions: FormatterOptions{ShowDraft: true, WhiteLabel: false},
				UserTier:         UserTierFree,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts
			got.ApplyTierPolicy()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentTypeIsValid(t *testing.T) {
	for _, dt := range AllDocumentTypes() {
		assert.True(t, dt.IsValid(), "type %q should be valid", dt)
	}
	assert.False(t, DocumentType("memo").IsValid())
	assert.False(t, DocumentType("").IsValid())
}

func TestMetadataFillDefaults(t *testing.T) {
	m := (&Metadata{ProjectName: "Apollo"}).FillDefaults()
	assert.Equal(t, "Apollo", m.ProjectName)
	assert.Equal(t, "Company", m.CompanyName)
	assert.Equal(t, "1.0", m.Version)
	assert.Equal(t, "hybrid", m.Methodology)
	assert.NotEmpty(t, m.Date)
	assert.NotEmpty(t, m.Author)
}
