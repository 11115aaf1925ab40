// Package iomock provides io mocks for tests.
package iomock

//go:generate go tool mockgen -package iomock -destination writer.go io Writer
