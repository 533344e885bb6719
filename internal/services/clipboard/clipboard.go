// Package clipboard copies rendered trees to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier places textual output on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service is the github.com/atotto/clipboard backed Copier used by the
// --copy flag.
type Service struct{}

// NewService constructs the clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)
