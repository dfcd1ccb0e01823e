package vision

import (
	"context"
	"errors"
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/status"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
)

// mockAnnotator はannotatorインターフェースのモック実装です。
type mockAnnotator struct {
	BatchAnnotateImagesFunc func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error)
	Calls                   int
}

func (m *mockAnnotator) BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, _ ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error) {
	m.Calls++
	return m.BatchAnnotateImagesFunc(ctx, req)
}

func newTestLabeler(m *mockAnnotator) *VisionLabeler {
	return &VisionLabeler{client: m, maxLabels: DefaultMaxLabels}
}

func TestVisionLabeler_Labels(t *testing.T) {
	ctx := context.Background()

	t.Run("success: labels converted", func(t *testing.T) {
		m := &mockAnnotator{BatchAnnotateImagesFunc: func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			require.Len(t, req.GetRequests(), 1)
			feature := req.GetRequests()[0].GetFeatures()[0]
			assert.Equal(t, visionpb.Feature_LABEL_DETECTION, feature.GetType())
			assert.Equal(t, int32(DefaultMaxLabels), feature.GetMaxResults())
			return &visionpb.BatchAnnotateImagesResponse{
				Responses: []*visionpb.AnnotateImageResponse{{
					LabelAnnotations: []*visionpb.EntityAnnotation{
						{Description: "Software", Score: 0.5},
						{Description: "Logo", Score: 0.25},
					},
				}},
			}, nil
		}}

		labels, err := newTestLabeler(m).Labels(ctx, []byte("fake-image"))

		require.NoError(t, err)
		assert.Equal(t, []entity.ImageLabel{
			{Description: "Software", Score: 0.5},
			{Description: "Logo", Score: 0.25},
		}, labels)
	})

	t.Run("error: empty image data", func(t *testing.T) {
		m := &mockAnnotator{}

		_, err := newTestLabeler(m).Labels(ctx, nil)

		assert.ErrorIs(t, err, usecase.ErrModelCallFailed)
		assert.Equal(t, 0, m.Calls)
	})

	t.Run("error: image too large", func(t *testing.T) {
		m := &mockAnnotator{}

		_, err := newTestLabeler(m).Labels(ctx, make([]byte, MaxImageSize+1))

		assert.ErrorIs(t, err, usecase.ErrModelCallFailed)
		assert.Equal(t, 0, m.Calls)
	})

	t.Run("error: api returns error", func(t *testing.T) {
		apiErr := errors.New("unavailable")
		m := &mockAnnotator{BatchAnnotateImagesFunc: func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			return nil, apiErr
		}}

		_, err := newTestLabeler(m).Labels(ctx, []byte("fake-image"))

		assert.ErrorIs(t, err, usecase.ErrModelCallFailed)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("error: per-image error", func(t *testing.T) {
		m := &mockAnnotator{BatchAnnotateImagesFunc: func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			return &visionpb.BatchAnnotateImagesResponse{
				Responses: []*visionpb.AnnotateImageResponse{{Error: &status.Status{Message: "bad image data"}}},
			}, nil
		}}

		_, err := newTestLabeler(m).Labels(ctx, []byte("fake-image"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad image data")
	})

	t.Run("success: empty response", func(t *testing.T) {
		m := &mockAnnotator{BatchAnnotateImagesFunc: func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			return &visionpb.BatchAnnotateImagesResponse{}, nil
		}}

		labels, err := newTestLabeler(m).Labels(ctx, []byte("fake-image"))

		require.NoError(t, err)
		assert.Empty(t, labels)
	})
}

func TestVisionLabeler_Close_NoClient(t *testing.T) {
	assert.NoError(t, newTestLabeler(&mockAnnotator{}).Close())
}
