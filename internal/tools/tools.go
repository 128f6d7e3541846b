//go:build tools

// Package tools pins CLI tools used by go:generate.
package tools

import (
	_ "github.com/swaggo/swag"
)
