package razorgen_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/razorgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires path", func(t *testing.T) {
		t.Parallel()

		doc := &razorgen.Document{ProjectDir: "site"}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, razorgen.EINVALID, razorgen.ErrorCode(err))
	})

	t.Run("requires project directory", func(t *testing.T) {
		t.Parallel()

		doc := &razorgen.Document{Path: "site/index.html"}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, razorgen.EINVALID, razorgen.ErrorCode(err))
	})
}

func TestDocument_Route(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		projectDir string
		path       string
		want       string
	}{
		{
			name:       "nested page",
			projectDir: "pages",
			path:       "pages/about-us/Team.html",
			want:       "/about-us/team",
		},
		{
			name:       "root page",
			projectDir: "site",
			path:       "site/index.html",
			want:       "/index",
		},
		{
			name:       "upper-case extension",
			projectDir: "site",
			path:       "site/Index.HTML",
			want:       "/index",
		},
		{
			name:       "pascal case segments",
			projectDir: "site",
			path:       "site/OurWork/CaseStudies.html",
			want:       "/our-work/case-studies",
		},
		{
			name:       "project in nested directory",
			projectDir: "web/design",
			path:       "web/design/blog/Post.html",
			want:       "/blog/post",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &razorgen.Document{
				Path:       filepath.FromSlash(tt.path),
				ProjectDir: filepath.FromSlash(tt.projectDir),
			}

			got, err := doc.Route()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_OutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		baseDir string
		want    string
	}{
		{
			name:    "root file",
			path:    "site/index.html",
			baseDir: "Pages",
			want:    "Pages/Index.razor",
		},
		{
			name:    "keeps relative directory",
			path:    "site/about-us/our-team.html",
			baseDir: "Pages",
			want:    "Pages/about-us/OurTeam.razor",
		},
		{
			name:    "component directory",
			path:    "site/partials/site-footer.html",
			baseDir: "Shared/Components",
			want:    "Shared/Components/partials/SiteFooter.razor",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &razorgen.Document{
				Path:       filepath.FromSlash(tt.path),
				ProjectDir: "site",
			}

			got, err := doc.OutputPath(filepath.FromSlash(tt.baseDir))

			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}
