package gcp

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
)

// VisionOCR performs full-document text detection through the Cloud Vision
// API. It is the remote collaborator behind the handwriting extractor.
type VisionOCR struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionOCR creates an image annotator client using the shared client options.
func NewVisionOCR(ctx context.Context) (*VisionOCR, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, ClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionOCR{client: client}, nil
}

// DetectDocumentText runs DOCUMENT_TEXT_DETECTION over the raw image bytes and
// returns the full recognized text. An image with no detectable text yields an
// empty string, not an error.
func (v *VisionOCR) DetectDocumentText(ctx context.Context, image []byte) (string, error) {
	annotation, err := v.client.DetectDocumentText(ctx, &visionpb.Image{Content: image}, nil)
	if err != nil {
		return "", fmt.Errorf("document text detection failed: %w", err)
	}
	if annotation == nil {
		return "", nil
	}
	return annotation.GetText(), nil
}

// Close releases the underlying annotator client.
func (v *VisionOCR) Close() error {
	return v.client.Close()
}
