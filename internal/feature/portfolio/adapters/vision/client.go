// Package vision はGoogle Cloud Vision APIを使用した画像ラベル検出クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
)

const (
	// MaxImageSize は画像の最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// DefaultMaxLabels は1画像あたりに要求するラベル数です。
	DefaultMaxLabels = 5
)

// annotator はImageAnnotatorClientのうち本パッケージが使用するメソッドです。
type annotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
}

// VisionLabeler はGoogle Cloud Vision APIのLABEL_DETECTIONで画像を分類します。
type VisionLabeler struct {
	client    annotator
	closer    func() error
	maxLabels int32
}

// VisionLabelerがImageLabelerを実装していることをコンパイル時に検証します。
var _ usecase.ImageLabeler = (*VisionLabeler)(nil)

// NewVisionLabeler はADCを使用してVisionLabelerの新しいインスタンスを生成します。
// maxLabels が0以下の場合は DefaultMaxLabels を使用します。
func NewVisionLabeler(ctx context.Context, maxLabels int) (*VisionLabeler, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	if maxLabels <= 0 {
		maxLabels = DefaultMaxLabels
	}
	return &VisionLabeler{client: client, closer: client.Close, maxLabels: int32(maxLabels)}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionLabeler) Close() error {
	if v.closer == nil {
		return nil
	}
	return v.closer()
}

// Labels は画像バイト列に対するラベルとスコアを返します。
func (v *VisionLabeler) Labels(ctx context.Context, imageData []byte) ([]entity.ImageLabel, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: image data is empty", usecase.ErrModelCallFailed)
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w: image size exceeds maximum of %d bytes", usecase.ErrModelCallFailed, MaxImageSize)
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: v.maxLabels},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: vision API request failed: %w", usecase.ErrModelCallFailed, err)
	}

	if len(resp.GetResponses()) == 0 {
		return nil, nil
	}

	first := resp.GetResponses()[0]
	if first.GetError() != nil {
		return nil, fmt.Errorf("%w: vision API error: %s", usecase.ErrModelCallFailed, first.GetError().GetMessage())
	}

	labels := make([]entity.ImageLabel, 0, len(first.GetLabelAnnotations()))
	for _, l := range first.GetLabelAnnotations() {
		labels = append(labels, entity.ImageLabel{
			Description: l.GetDescription(),
			Score:       float64(l.GetScore()),
		})
	}
	return labels, nil
}
