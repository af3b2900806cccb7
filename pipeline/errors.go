package pipeline

import "errors"

var (
	ErrUnknownUniform = errors.New("unknown uniform")
	ErrUniformType    = errors.New("uniform type mismatch")
)
