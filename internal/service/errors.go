package service

import "fmt"

type ErrOutputExists struct {
	Path string
}

func (e ErrOutputExists) Error() string {
	return fmt.Sprintf("output file %s already exists", e.Path)
}

func NewErrOutputExists(path string) *ErrOutputExists {
	return &ErrOutputExists{Path: path}
}
