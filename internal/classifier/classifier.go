// Package classifier labels item images through the external classifier.
package classifier

import (
	"context"
	"io"
)

// Unknown is the label the classifier returns for items it cannot identify.
// Unknown items are rejected.
const Unknown = "Unknown"

//go:generate mockgen -destination=mocks/mock_classifier.go -package=mocks ecobin-portal/internal/classifier Service

// Service classifies an item image and returns its label.
type Service interface {
	Classify(ctx context.Context, filename, contentType string, image io.Reader) (string, error)
}
