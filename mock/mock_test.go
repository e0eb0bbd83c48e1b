package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/razorgen"
	"github.com/fwojciec/razorgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *razorgen.Artifact
		s := &mock.ArtifactStore{
			SaveFn: func(_ context.Context, artifact *razorgen.Artifact) error {
				calledWith = artifact
				return nil
			},
		}

		artifact := &razorgen.Artifact{Path: "Pages/Index.razor", Content: "x"}
		err := s.Save(context.Background(), artifact)

		require.NoError(t, err)
		assert.Equal(t, artifact, calledWith)
	})
}

func TestProjectSource_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ReadFileFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.ProjectSource{
			ReadFileFn: func(_ context.Context, path string) (string, error) {
				return "content of " + path, nil
			},
		}

		got, err := s.ReadFile(context.Background(), "index.html")

		require.NoError(t, err)
		assert.Equal(t, "content of index.html", got)
	})
}
