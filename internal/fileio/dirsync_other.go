//go:build !unix

package fileio

func syncDir(string) error { return nil }
