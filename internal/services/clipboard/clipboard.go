// Package clipboard puts resolved breadcrumb paths on the system clipboard.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Copier copies resolved path text to the system clipboard.
type Copier interface {
	CopyPath(pathText string) error
	CopyPaths(pathTexts []string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// CopyPath writes one resolved path to the system clipboard.
func (service *Service) CopyPath(pathText string) error {
	return clipboard.WriteAll(pathText)
}

// CopyPaths writes several resolved paths to the system clipboard, one per
// line, preserving resolution order.
func (service *Service) CopyPaths(pathTexts []string) error {
	return clipboard.WriteAll(strings.Join(pathTexts, "\n"))
}

var _ Copier = (*Service)(nil)
